package repository

import (
	"context"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/errors"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByIDForUpdate retrieves a booking and locks its row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByAccount lists an account's bookings, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error)

	// Update saves every mutable field of the booking.
	Update(ctx context.Context, booking *entity.Booking) error

	// Delete removes a booking by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
