// Package mail delivers the service's transactional email through an SMTP relay
// (go-mail), the Brevo HTTP API, or the log when no provider is configured.
package mail

import (
	"context"
	"log/slog"

	"zerowaste/config"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"

	"go.uber.org/fx"
)

// Mail providers
const (
	ProviderSMTP  = "smtp"
	ProviderBrevo = "brevo"
	ProviderLog   = "log"
)

// SenderParams holds dependencies for the MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSender creates a MailSender based on configuration
func NewSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLog {
		logger.Info("Mail provider not configured, emails will only be logged")

		return &logSender{logger: logger}, nil
	}

	if cfg.FromEmail == "" {
		return nil, errors.New("mail.fromEmail is required")
	}

	switch cfg.Provider {
	case ProviderSMTP:
		if cfg.SMTP.Host == "" || cfg.SMTP.Port == 0 {
			return nil, errors.New("smtp host and port are required for smtp provider")
		}
		logger.Info("Using SMTP mail sender", slog.String("host", cfg.SMTP.Host))

		sender, err := newSMTPSender(cfg)
		if err != nil {
			return nil, err
		}

		return sender, nil

	case ProviderBrevo:
		if cfg.Brevo.APIKey == "" {
			return nil, errors.New("brevo api key is required for brevo provider")
		}
		logger.Info("Using Brevo mail sender")

		return NewBrevoSender(cfg), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

// logSender writes emails to the log instead of delivering them.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.InfoContext(ctx, "[LogMail] Email not delivered, no provider configured",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_bytes", len(htmlBody)),
	)

	return nil
}
