// Package memory is an in-process implementation of the persistence layer.
// It backs local runs without a database and the use case tests, and
// enforces the same uniqueness and cascade rules as the SQL schema.
package memory

import (
	"context"
	"sync"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/domain/repository"

	"github.com/google/uuid"
)

type dataset struct {
	accounts map[uuid.UUID]*entity.Account
	emails   map[string]uuid.UUID
	bookings map[uuid.UUID]*entity.Booking
	reviews  map[uuid.UUID]*entity.Review
}

func newDataset() *dataset {
	return &dataset{
		accounts: make(map[uuid.UUID]*entity.Account),
		emails:   make(map[string]uuid.UUID),
		bookings: make(map[uuid.UUID]*entity.Booking),
		reviews:  make(map[uuid.UUID]*entity.Review),
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		accounts: make(map[uuid.UUID]*entity.Account, len(d.accounts)),
		emails:   make(map[string]uuid.UUID, len(d.emails)),
		bookings: make(map[uuid.UUID]*entity.Booking, len(d.bookings)),
		reviews:  make(map[uuid.UUID]*entity.Review, len(d.reviews)),
	}
	for id, a := range d.accounts {
		copied := *a
		c.accounts[id] = &copied
	}
	for email, id := range d.emails {
		c.emails[email] = id
	}
	for id, b := range d.bookings {
		copied := *b
		c.bookings[id] = &copied
	}
	for id, r := range d.reviews {
		copied := *r
		c.reviews[id] = &copied
	}

	return c
}

// Store holds all records behind a single mutex.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// view runs fn against the transaction's dataset, or against the live
// dataset under the store lock when called outside a transaction.
func (s *Store) view(tx *dataset, fn func(d *dataset) error) error {
	if tx != nil {
		return fn(tx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

// transactionManager serializes transactions and applies them copy-on-write,
// so a failed callback leaves no trace.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	store *Store
	tx    *dataset
}

func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return &accountRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{store: f.store, tx: f.tx}
}

// Execute runs fn on a private copy of the data and publishes it on success.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.data.clone()
	if err := fn(&repositoryFactory{store: tm.store, tx: tx}); err != nil {
		return err
	}
	tm.store.data = tx

	return nil
}
