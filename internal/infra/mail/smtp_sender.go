package mail

import (
	"context"
	"net"
	"time"

	"zerowaste/config"
	"zerowaste/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPTimeout = 10 * time.Second

// smtpSender delivers mail through an SMTP relay with PLAIN auth and STARTTLS when offered.
type smtpSender struct {
	client   *gomail.Client
	from     string
	fromName string
}

func newSMTPSender(cfg *config.MailConfig) (*smtpSender, error) {
	timeout := cfg.SMTP.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithTimeout(timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithDialContextFunc(dialWithDeadline),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpSender{
		client:   client,
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg, err := newMessage(s.from, s.fromName, to, subject, htmlBody)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "smtp send to %s", to)
	}

	return nil
}

// newMessage builds an HTML message.
func newMessage(from, fromName, to, subject, htmlBody string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if fromName != "" {
		if err := msg.FromFormat(fromName, from); err != nil {
			return nil, errors.Wrap(err, "invalid sender address")
		}
	} else if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}

	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}

	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	return msg, nil
}

// dialWithDeadline carries the dial context's deadline onto the connection,
// so a relay that accepts but never greets cannot hold the sender.
func dialWithDeadline(ctx context.Context, network, address string) (net.Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()

			return nil, err
		}
	}

	return conn, nil
}
