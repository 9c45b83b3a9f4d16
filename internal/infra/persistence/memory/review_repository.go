package memory

import (
	"context"
	"slices"
	"time"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/domain/repository"

	"github.com/google/uuid"
)

type reviewRepository struct {
	store *Store
	tx    *dataset
}

// NewReviewRepository returns a ReviewRepository outside any transaction.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (repo *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		if _, ok := d.accounts[review.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}

		if review.ID == uuid.Nil {
			review.ID = uuid.New()
		}
		now := time.Now()
		review.CreatedAt = now
		review.UpdatedAt = now

		stored := *review
		d.reviews[review.ID] = &stored

		return nil
	})
}

func (repo *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	var found *entity.Review
	err := repo.store.view(repo.tx, func(d *dataset) error {
		r, ok := d.reviews[id]
		if !ok {
			return repository.ErrReviewNotFound
		}
		copied := *r
		found = &copied

		return nil
	})

	return found, err
}

func (repo *reviewRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return repo.FindByID(ctx, id)
}

func (repo *reviewRepository) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := repo.store.view(repo.tx, func(d *dataset) error {
		reviews = make([]*entity.Review, 0)
		for _, r := range d.reviews {
			if r.AccountID == accountID {
				copied := *r
				reviews = append(reviews, &copied)
			}
		}
		slices.SortFunc(reviews, func(a, b *entity.Review) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		return nil
	})

	return reviews, err
}

func (repo *reviewRepository) Update(_ context.Context, review *entity.Review) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		current, ok := d.reviews[review.ID]
		if !ok {
			return repository.ErrReviewNotFound
		}

		review.AccountID = current.AccountID
		review.CreatedAt = current.CreatedAt
		review.UpdatedAt = time.Now()

		stored := *review
		d.reviews[review.ID] = &stored

		return nil
	})
}

func (repo *reviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		if _, ok := d.reviews[id]; !ok {
			return repository.ErrReviewNotFound
		}
		delete(d.reviews, id)

		return nil
	})
}
