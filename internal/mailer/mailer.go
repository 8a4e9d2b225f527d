// Package mailer delivers transactional mail over SMTP.
package mailer

import (
	"context"
	"strconv"
	"time"

	"methakadai-be/internal/config"
	"methakadai-be/internal/logger"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Mailer struct {
	client *mail.Client
	from   string
}

// New builds an SMTP mailer from config. Returns nil client when SMTP is not
// configured; Send then logs the mail instead of delivering it, which keeps
// local development working without a relay.
func New(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTPHost == "" {
		return &Mailer{from: cfg.MailFrom}, nil
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 2525
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return &Mailer{client: client, from: cfg.MailFrom}, nil
}

func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.FromCtx(ctx)

	if m.client == nil {
		log.Info("smtp not configured, mail suppressed",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return err
	}

	log.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
