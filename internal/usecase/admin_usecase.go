package usecase

import (
	"context"

	"zerowaste/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxPageSize caps the number of accounts returned by one listing.
const MaxPageSize = 100

// AccountInput is an account opened by staff. Unlike self-registration the
// activation and staff flags are chosen by the caller.
type AccountInput struct {
	RegisterInput
	IsActive bool
	IsStaff  bool
}

// AccountPatch lists the account fields staff may change; nil fields are left untouched.
type AccountPatch struct {
	ProfilePatch
	IsActive *bool
	IsStaff  *bool
}

// AdminUsecase defines staff-only account administration.
type AdminUsecase interface {
	ListAccounts(ctx context.Context, actor Actor, offset, limit int) ([]*entity.Account, error)
	GetAccount(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Account, error)
	CreateAccount(ctx context.Context, actor Actor, input *AccountInput) (*entity.Account, error)
	UpdateAccount(ctx context.Context, actor Actor, id uuid.UUID, patch *AccountPatch) (*entity.Account, error)
	// DeleteAccount removes the account with its bookings and reviews.
	DeleteAccount(ctx context.Context, actor Actor, id uuid.UUID) error
}
