package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateReviewInput(input *usecase.ReviewInput) error {
	if !entity.ValidRating(input.Rating) {
		return invalid("rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(input.Comment) > maxCommentLength {
		return invalid("comment must be at most 1000 characters")
	}

	return nil
}

// Create stores a review signed with the caller's display name.
func (srv *reviewService) Create(ctx context.Context, actor usecase.Actor, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &entity.Review{
		AccountID: actor.AccountID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindByID(ctx, actor.AccountID)
		if err != nil {
			return accountLookupError(err)
		}
		review.ReviewerName = author.DisplayName

		return errors.Wrap(repoFactory.NewReviewRepository().Create(ctx, review), "failed to create review")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Info("Review created", slog.String("reviewID", review.ID.String()), slog.Int("rating", review.Rating))

	return review, nil
}

// ListMine returns the caller's reviews.
func (srv *reviewService) ListMine(ctx context.Context, actor usecase.Actor) ([]*entity.Review, error) {
	return srv.ListByAccount(ctx, actor.AccountID)
}

// ListByAccount returns the public reviews written by an account.
func (srv *reviewService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Update changes a review; only its author may do so.
func (srv *reviewService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return reviewLookupError(err)
		}

		if !review.IsOwnedBy(actor.AccountID) {
			return domainerrors.ErrForbidden.WrapMessage("review belongs to another account")
		}

		review.Rating = input.Rating
		review.Comment = strings.TrimSpace(input.Comment)
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		updated = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return updated, nil
}

// Delete removes a review written by the actor, or any review through the staff path.
func (srv *reviewService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return reviewLookupError(err)
		}

		if !actor.CanAccess(review.AccountID) {
			return domainerrors.ErrForbidden.WrapMessage("review belongs to another account")
		}

		if err := reviewRepo.Delete(ctx, id); err != nil {
			return reviewLookupError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.String("reviewID", id.String()))

	return nil
}
