package usecase

import (
	"context"
	"fmt"

	"zerowaste/internal/domain/service"
	"zerowaste/internal/errors"
)

// NotificationUsecase turns published booking events into customer notifications.
type NotificationUsecase interface {
	// HandleBookingEvent notifies the booking's owner. Failures worth a
	// redelivery are reported as a RetryableError.
	HandleBookingEvent(ctx context.Context, event *service.BookingEvent) error
}

// RetryableError wraps an error to indicate the event should be redelivered
type RetryableError struct {
	err error
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
