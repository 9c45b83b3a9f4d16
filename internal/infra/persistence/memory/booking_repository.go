package memory

import (
	"context"
	"slices"
	"time"

	"zerowaste/internal/domain/entity"
	"zerowaste/internal/domain/repository"

	"github.com/google/uuid"
)

type bookingRepository struct {
	store *Store
	tx    *dataset
}

// NewBookingRepository returns a BookingRepository outside any transaction.
func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func (repo *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		if _, ok := d.accounts[booking.AccountID]; !ok {
			return repository.ErrAccountNotFound
		}

		if booking.ID == uuid.Nil {
			booking.ID = uuid.New()
		}
		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now

		stored := *booking
		d.bookings[booking.ID] = &stored

		return nil
	})
}

func (repo *bookingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	var found *entity.Booking
	err := repo.store.view(repo.tx, func(d *dataset) error {
		b, ok := d.bookings[id]
		if !ok {
			return repository.ErrBookingNotFound
		}
		copied := *b
		found = &copied

		return nil
	})

	return found, err
}

// FindByIDForUpdate needs no extra locking: transactions already hold the store lock.
func (repo *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return repo.FindByID(ctx, id)
}

func (repo *bookingRepository) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	err := repo.store.view(repo.tx, func(d *dataset) error {
		bookings = make([]*entity.Booking, 0)
		for _, b := range d.bookings {
			if b.AccountID == accountID {
				copied := *b
				bookings = append(bookings, &copied)
			}
		}
		slices.SortFunc(bookings, func(a, b *entity.Booking) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})

		return nil
	})

	return bookings, err
}

func (repo *bookingRepository) Update(_ context.Context, booking *entity.Booking) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		current, ok := d.bookings[booking.ID]
		if !ok {
			return repository.ErrBookingNotFound
		}

		booking.AccountID = current.AccountID
		booking.CreatedAt = current.CreatedAt
		booking.UpdatedAt = time.Now()

		stored := *booking
		d.bookings[booking.ID] = &stored

		return nil
	})
}

func (repo *bookingRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.view(repo.tx, func(d *dataset) error {
		if _, ok := d.bookings[id]; !ok {
			return repository.ErrBookingNotFound
		}
		delete(d.bookings, id)

		return nil
	})
}
