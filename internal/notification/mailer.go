package notification

import (
	"context"

	"go-hrms/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, to, name, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, name, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to, name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct {
	logger *zap.Logger
}

// NewLogMailer is used when SMTP is not configured; mails are only logged.
func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger.Named("notification.mailer")}
}

func (m *logMailer) Send(_ context.Context, to, _, subject, _ string) error {
	m.logger.Info("mail delivery disabled, skipping", zap.String("to", to), zap.String("subject", subject))
	return nil
}
