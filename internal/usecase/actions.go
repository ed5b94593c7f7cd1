package usecase

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/action"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ActionRunner executes simulated admin actions. An action never changes a
// record: it waits, checks its target, and emits a notification.
type ActionRunner struct {
	notifier domain.Notifier
	delay    time.Duration
	clock    Clock
	metrics  *metrics.MetricsManager
	logger   *logger.Logger
}

func NewActionRunner(notifier domain.Notifier, delay time.Duration, clock Clock, m *metrics.MetricsManager, log *logger.Logger) *ActionRunner {
	if clock == nil {
		clock = time.Now
	}
	return &ActionRunner{
		notifier: notifier,
		delay:    delay,
		clock:    clock,
		metrics:  m,
		logger:   log.Named("ActionRunner"),
	}
}

// Run starts the action as a task and waits for it with ctx. build returns the
// notification title, description and variant, or an error that aborts the
// action.
func (r *ActionRunner) Run(ctx context.Context, name, subject, subjectID string, build func(ctx context.Context) (*domain.Notification, error)) (*domain.Notification, error) {
	ctx, span := tracer.Start(ctx, "action."+subject+"."+name)
	defer span.End()
	span.SetAttributes(attribute.String("subject.id", subjectID))

	r.logger.Info("Running simulated action",
		zap.String("action", name),
		zap.String("subject", subject),
		zap.String("subject_id", subjectID))

	task := action.Start(ctx, r.delay, func(ctx context.Context) (*domain.Notification, error) {
		n, err := build(ctx)
		if err != nil {
			return nil, err
		}
		n.ID = uuid.NewString()
		n.Action = name
		n.Subject = subject
		n.SubjectID = subjectID
		n.CreatedAt = r.clock()
		if n.Variant == "" {
			n.Variant = domain.VariantDefault
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.notifier != nil {
			if err := r.notifier.Notify(ctx, n); err != nil {
				r.logger.Warn("Failed to deliver action notification", zap.String("notification_id", n.ID), zap.Error(err))
			}
		}
		return n, nil
	})

	n, err := task.Await(ctx)
	r.metrics.ObserveAction(subject+"."+name, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("Simulated action failed",
			zap.String("action", name),
			zap.String("subject_id", subjectID),
			zap.Error(err))
		return nil, err
	}
	return n, nil
}
