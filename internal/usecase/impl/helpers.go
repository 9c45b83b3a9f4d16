// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	minDisplayNameLength = 3
	maxDisplayNameLength = 50
	maxNameLength        = 100
	maxAddressLength     = 255
	maxCommentLength     = 1000
)

// validate checks single values against validator tags; it is safe for concurrent use.
//
//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

func invalid(details string) error {
	return domainerrors.ErrInvalidInput.WithDetails(details)
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email,max=255"); err != nil {
		return invalid("email must be a valid address")
	}

	return nil
}

func validateDisplayName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < minDisplayNameLength || n > maxDisplayNameLength {
		return invalid("display name must be between 3 and 50 characters")
	}

	return nil
}

// validatePhone accepts an empty value; anything else must be E.164.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if err := validate.Var(phone, "e164"); err != nil {
		return invalid("phone number must be in E.164 format")
	}

	return nil
}

func validateName(field, value string, required bool) error {
	value = strings.TrimSpace(value)
	if required && value == "" {
		return invalid(field + " is required")
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return invalid(field + " is too long")
	}

	return nil
}

// accountLookupError maps a repository miss to the public account error.
func accountLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WrapMessage("account not found")
	}

	return errors.Wrap(err, "failed to load account")
}

// bookingLookupError maps a repository miss to the generic not found error.
func bookingLookupError(err error) error {
	if errors.Is(err, repository.ErrBookingNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("booking not found")
	}

	return errors.Wrap(err, "failed to load booking")
}

// reviewLookupError maps a repository miss to the generic not found error.
func reviewLookupError(err error) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("review not found")
	}

	return errors.Wrap(err, "failed to load review")
}

func newBookingEvent(ctx context.Context, eventType string, booking *entity.Booking) *service.BookingEvent {
	return &service.BookingEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		BookingID:   booking.ID.String(),
		AccountID:   booking.AccountID.String(),
		WasteType:   booking.WasteType.String(),
		Amount:      booking.Amount,
		OrderStatus: booking.OrderStatus.String(),
		Address:     booking.Address,
		PickupDate:  booking.PickupDate.Format(time.DateOnly),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// publishEvent hands the event to the publisher; a failure never fails the caller's operation.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.BookingEvent) {
	if err := publisher.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			slog.String("event_type", event.Type),
			slog.String("booking_id", event.BookingID),
			slog.Any("error", err),
		)
	}
}
