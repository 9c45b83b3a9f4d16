package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"zerowaste/config"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"
)

const (
	defaultBrevoBaseURL = "https://api.brevo.com/v3"
	defaultBrevoTimeout = 10 * time.Second
)

// brevoSender delivers mail through the Brevo (formerly Sendinblue) transactional API.
type brevoSender struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

type brevoContact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// NewBrevoSender creates a Brevo-backed MailSender.
func NewBrevoSender(cfg *config.MailConfig) service.MailSender {
	baseURL := cfg.Brevo.BaseURL
	if baseURL == "" {
		baseURL = defaultBrevoBaseURL
	}
	timeout := cfg.Brevo.Timeout
	if timeout <= 0 {
		timeout = defaultBrevoTimeout
	}

	return &brevoSender{
		baseURL:    baseURL,
		apiKey:     cfg.Brevo.APIKey,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *brevoSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" || subject == "" || htmlBody == "" {
		return errors.New("recipient, subject and html content cannot be empty")
	}

	body, err := json.Marshal(brevoSendRequest{
		Sender:      brevoContact{Email: s.fromEmail, Name: s.fromName},
		To:          []brevoContact{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "brevo send email request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("brevo API error: status %d, body: %s", resp.StatusCode, detail)
	}

	return nil
}
