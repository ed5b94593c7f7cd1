// Package notify fans a simulated action's notification out to every
// configured delivery channel.
package notify

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.uber.org/zap"
)

type Sink struct {
	Name     string
	Notifier domain.Notifier
}

// Dispatcher logs every notification and forwards it to its sinks. A failing
// sink is logged and skipped; Notify itself never fails.
type Dispatcher struct {
	sinks  []Sink
	logger *logger.Logger
}

func NewDispatcher(log *logger.Logger, sinks ...Sink) *Dispatcher {
	return &Dispatcher{sinks: sinks, logger: log.Named("Notifications")}
}

func (d *Dispatcher) Notify(ctx context.Context, n *domain.Notification) error {
	d.logger.Info("Admin notification",
		zap.String("id", n.ID),
		zap.String("action", n.Action),
		zap.String("subject", n.Subject),
		zap.String("subject_id", n.SubjectID),
		zap.String("title", n.Title),
		zap.String("variant", string(n.Variant)),
	)
	for _, s := range d.sinks {
		if err := s.Notifier.Notify(ctx, n); err != nil {
			d.logger.Warn("Notification delivery failed (non-critical)",
				zap.String("sink", s.Name),
				zap.String("id", n.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}
