package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"zerowaste/config"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"
)

var (
	verificationTemplate = template.Must(template.New("verification").Parse(`<p>Hi {{.Email}},</p>
<p>Thanks for signing up to {{.Project}}. Confirm your email address to activate your account:</p>
<p><a href="{{.Link}}">Verify email</a></p>
<p>The link is valid for {{.Validity}}.</p>`))

	resetTemplate = template.Must(template.New("reset").Parse(`<p>Hi {{.Email}},</p>
<p>We received a request to reset the password of your {{.Project}} account.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>The link is valid for {{.Validity}}. If you did not ask for this, ignore this email.</p>`))

	bookingTemplate = template.Must(template.New("booking").Parse(`<p>Your {{.Project}} pickup booking {{.Event.BookingID}} was updated.</p>
<ul>
<li>Event: {{.Event.Type}}</li>
<li>Waste type: {{.Event.WasteType}}</li>
<li>Status: {{.Event.OrderStatus}}</li>
<li>Amount: {{.Event.Amount}}</li>
<li>Pickup date: {{.Event.PickupDate}}</li>
</ul>`))
)

type linkData struct {
	Project  string
	Email    string
	Link     string
	Validity string
}

type bookingData struct {
	Project string
	Event   *service.BookingEvent
}

type accountMailer struct {
	sender      service.MailSender
	projectName string
	frontendURL string
	verifyTTL   string
	resetTTL    string
}

// NewAccountMailer creates the AccountMailer used by the account and booking flows
func NewAccountMailer(cfg *config.Config, sender service.MailSender) service.AccountMailer {
	m := &accountMailer{
		sender:      sender,
		projectName: cfg.App.ProjectName,
		frontendURL: strings.TrimRight(cfg.App.FrontendURL, "/"),
	}
	if cfg.Token != nil {
		m.verifyTTL = cfg.Token.VerifyTTL.String()
		m.resetTTL = cfg.Token.ResetTTL.String()
	}

	return m
}

func (m *accountMailer) SendVerification(ctx context.Context, to, token string) error {
	subject := fmt.Sprintf("%s - Email verification for user %s", m.projectName, to)

	return m.sendLink(ctx, verificationTemplate, to, subject, "/verify-email", token, m.verifyTTL)
}

func (m *accountMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	subject := fmt.Sprintf("%s - Password recovery for user %s", m.projectName, to)

	return m.sendLink(ctx, resetTemplate, to, subject, "/reset-password", token, m.resetTTL)
}

func (m *accountMailer) SendBookingNotice(ctx context.Context, to string, event *service.BookingEvent) error {
	var buf bytes.Buffer
	if err := bookingTemplate.Execute(&buf, bookingData{Project: m.projectName, Event: event}); err != nil {
		return errors.Wrap(err, "render booking notice")
	}
	subject := fmt.Sprintf("%s - Booking %s", m.projectName, bookingSubject(event.Type))

	return m.sender.Send(ctx, to, subject, buf.String())
}

func (m *accountMailer) sendLink(ctx context.Context, tmpl *template.Template, to, subject, path, token, validity string) error {
	data := linkData{
		Project:  m.projectName,
		Email:    to,
		Link:     m.frontendURL + path + "?token=" + url.QueryEscape(token),
		Validity: validity,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, "render %s email", tmpl.Name())
	}

	return m.sender.Send(ctx, to, subject, buf.String())
}

func bookingSubject(eventType string) string {
	switch eventType {
	case service.BookingEventCreated:
		return "received"
	case service.BookingEventAdvanced:
		return "status update"
	case service.BookingEventPaid:
		return "payment receipt"
	case service.BookingEventCancelled:
		return "cancelled"
	default:
		return "update"
	}
}
