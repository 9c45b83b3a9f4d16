package usecase

import (
	"context"

	"zerowaste/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput defines the data of a review.
type ReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines review management operations.
type ReviewUsecase interface {
	Create(ctx context.Context, actor Actor, input *ReviewInput) (*entity.Review, error)
	ListMine(ctx context.Context, actor Actor) ([]*entity.Review, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Review, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *ReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
