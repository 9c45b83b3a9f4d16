// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by email, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List returns accounts ordered by creation time, oldest first.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, error)

	// Create persists a new account. A clash on the email unique index
	// is reported as domainerrors.ErrDuplicateEmail.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account together with its bookings and reviews.
	Delete(ctx context.Context, id uuid.UUID) error
}
