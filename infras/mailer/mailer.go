package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/logger"

	mail "github.com/wneessen/go-mail"
	"github.com/rs/zerolog/log"
)

// Mailer delivers transactional HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// New returns an SMTP-backed Mailer when a mail host is configured, and a
// log-only Mailer otherwise so local environments never need a relay.
func New(cfg *config.Config, otl otel.Otel) Mailer {
	if cfg.Mail.Host == "" {
		log.Warn().Msg("No mail host configured, email delivery will only be logged")

		return &logMailer{from: cfg.Mail.From}
	}

	client, err := mail.NewClient(cfg.Mail.Host,
		mail.WithPort(cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Mail.Username),
		mail.WithPassword(cfg.Mail.Password),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create mail client, falling back to log-only delivery")

		return &logMailer{from: cfg.Mail.From}
	}

	return &smtpMailer{
		client: client,
		from:   cfg.Mail.From,
		otel:   otl,
	}
}

type smtpMailer struct {
	client *mail.Client
	from   string
	otel   otel.Otel
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")

	return nil
}

type logMailer struct {
	from string
}

func (m *logMailer) Send(_ context.Context, to, subject, _ string) error {
	log.Info().
		Str("from", m.from).
		Str("to", to).
		Str("subject", subject).
		Msg("Email delivery skipped, mail transport disabled")

	return nil
}
