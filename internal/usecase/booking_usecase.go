package usecase

import (
	"context"
	"time"

	"zerowaste/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingInput defines the fields of a pickup booking chosen by the customer.
type BookingInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	PickupDate time.Time
	WasteType  string
}

// BookingPatch lists the booking fields a caller may change; nil fields are left untouched.
type BookingPatch struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	PickupDate *time.Time
	WasteType  *string
}

// BookingUsecase defines the booking lifecycle operations.
type BookingUsecase interface {
	Create(ctx context.Context, actor Actor, input *BookingInput) (*entity.Booking, error)
	ListByOwner(ctx context.Context, actor Actor) ([]*entity.Booking, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, patch *BookingPatch) (*entity.Booking, error)
	Replace(ctx context.Context, actor Actor, id uuid.UUID, input *BookingInput) (*entity.Booking, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	// AdvanceDeliveryStatus moves the order strictly forward; owners and staff may call it.
	AdvanceDeliveryStatus(ctx context.Context, actor Actor, id uuid.UUID, target string) (*entity.Booking, error)
	// PickupQR renders the PNG QR code a collector scans on pickup.
	PickupQR(ctx context.Context, actor Actor, id uuid.UUID) ([]byte, error)
}
