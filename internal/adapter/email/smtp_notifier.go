package email

import (
	"context"
	"fmt"
	"html"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	SenderEmail string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier mails destructive notifications (rejections, suspensions,
// deletions) to the admin mailbox. Other notifications are ignored.
type Notifier struct {
	cfg    SMTPConfig
	to     []string
	d      dialer
	logger *logger.Logger
}

func NewNotifier(cfg SMTPConfig, to string, log *logger.Logger) (*Notifier, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.SenderEmail == "" {
		return nil, fmt.Errorf("SMTP host, port, and sender email must be configured")
	}
	if to == "" {
		return nil, fmt.Errorf("admin notification address must be configured")
	}
	return newNotifier(cfg, to, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), log), nil
}

func newNotifier(cfg SMTPConfig, to string, d dialer, log *logger.Logger) *Notifier {
	return &Notifier{
		cfg:    cfg,
		to:     []string{to},
		d:      d,
		logger: log.Named("SMTPNotifier"),
	}
}

func (n *Notifier) Notify(ctx context.Context, note *domain.Notification) error {
	if note.Variant != domain.VariantDestructive {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.SenderEmail)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", "[Bonti Admin] "+note.Title)
	m.SetBody("text/plain", fmt.Sprintf("%s\n\n%s\n\nRéférence: %s/%s", note.Title, note.Description, note.Subject, note.SubjectID))
	m.AddAlternative("text/html", fmt.Sprintf("<h2>%s</h2><p>%s</p><p><small>Référence: %s/%s</small></p>",
		html.EscapeString(note.Title), html.EscapeString(note.Description),
		html.EscapeString(note.Subject), html.EscapeString(note.SubjectID)))

	done := make(chan error, 1)
	go func() {
		done <- n.d.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		n.logger.Warn("Email sending cancelled or timed out", zap.Strings("to", n.to), zap.String("subject", note.Title), zap.Error(ctx.Err()))
		return fmt.Errorf("email sending cancelled or timed out: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			n.logger.Error("Failed to send email", zap.Strings("to", n.to), zap.String("subject", note.Title), zap.Error(err))
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	n.logger.Info("Email sent successfully", zap.Strings("to", n.to), zap.String("subject", note.Title))
	return nil
}
