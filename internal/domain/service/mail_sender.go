package service

import "context"

// MailSender delivers HTML email. Callers treat delivery as best effort.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// AccountMailer renders and sends the emails of the account and booking flows.
type AccountMailer interface {
	// SendVerification mails a link carrying an email-verification token.
	SendVerification(ctx context.Context, to, token string) error

	// SendPasswordReset mails a link carrying a password-reset token.
	SendPasswordReset(ctx context.Context, to, token string) error

	// SendBookingNotice mails a short status update about a booking.
	SendBookingNotice(ctx context.Context, to string, event *BookingEvent) error
}
