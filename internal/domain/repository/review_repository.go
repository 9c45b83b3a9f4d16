package repository

import (
	"context"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	// FindByAccount lists an account's reviews, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
