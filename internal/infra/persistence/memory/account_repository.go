package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	store *Store
	tx    *dataset
}

// NewAccountRepository returns an AccountRepository outside any transaction.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	var found *entity.Account
	err := repo.store.view(repo.tx, func(d *dataset) error {
		a, ok := d.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		copied := *a
		found = &copied

		return nil
	})

	return found, err
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var id uuid.UUID
	err := repo.store.view(repo.tx, func(d *dataset) error {
		var ok bool
		id, ok = d.emails[entity.NormalizeEmail(email)]
		if !ok {
			return repository.ErrAccountNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *accountRepository) List(_ context.Context, offset, limit int) ([]*entity.Account, error) {
	var accounts []*entity.Account
	err := repo.store.view(repo.tx, func(d *dataset) error {
		all := make([]*entity.Account, 0, len(d.accounts))
		for _, a := range d.accounts {
			copied := *a
			all = append(all, &copied)
		}
		slices.SortFunc(all, func(a, b *entity.Account) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}

			return strings.Compare(a.ID.String(), b.ID.String())
		})

		start := min(max(offset, 0), len(all))
		end := len(all)
		if limit > 0 {
			end = min(start+limit, len(all))
		}
		accounts = all[start:end]

		return nil
	})

	return accounts, err
}

func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		email := entity.NormalizeEmail(account.Email)
		if _, taken := d.emails[email]; taken {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}

		if account.ID == uuid.Nil {
			account.ID = uuid.New()
		}
		now := time.Now()
		account.Email = email
		account.CreatedAt = now
		account.UpdatedAt = now

		stored := *account
		d.accounts[account.ID] = &stored
		d.emails[email] = account.ID

		return nil
	})
}

func (repo *accountRepository) Update(_ context.Context, account *entity.Account) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		current, ok := d.accounts[account.ID]
		if !ok {
			return repository.ErrAccountNotFound
		}

		email := entity.NormalizeEmail(account.Email)
		if owner, taken := d.emails[email]; taken && owner != account.ID {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}

		delete(d.emails, current.Email)
		account.Email = email
		account.CreatedAt = current.CreatedAt
		account.UpdatedAt = time.Now()

		stored := *account
		d.accounts[account.ID] = &stored
		d.emails[email] = account.ID

		return nil
	})
}

func (repo *accountRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		current, ok := d.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}

		delete(d.emails, current.Email)
		delete(d.accounts, id)
		for bookingID, b := range d.bookings {
			if b.AccountID == id {
				delete(d.bookings, bookingID)
			}
		}
		for reviewID, r := range d.reviews {
			if r.AccountID == id {
				delete(d.reviews, reviewID)
			}
		}

		return nil
	})
}
