package postgres

import (
	"context"

	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the domain ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a review with SELECT ... FOR UPDATE.
func (repo *reviewRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *reviewRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := db.Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByAccount lists an account's reviews, newest first.
func (repo *reviewRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by account")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update saves the mutable fields of a review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("reviewer_name", "rating", "comment", "updated_at").
		Updates(reviewM)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review by its ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:           data.ID,
		AccountID:    data.AccountID,
		ReviewerName: data.ReviewerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:           data.ID,
		AccountID:    data.AccountID,
		ReviewerName: data.ReviewerName,
		Rating:       data.Rating,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
