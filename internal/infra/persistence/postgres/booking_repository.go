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

// bookingRepository implements the domain BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing or invalid booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindByID retrieves a booking by its ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a booking with SELECT ... FOR UPDATE.
func (repo *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *bookingRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := db.Where("id = ?", id).First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// FindByAccount lists an account's bookings, newest first.
func (repo *bookingRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by account")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// Update saves every mutable field of the booking.
func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", booking.ID).
		Select("*").
		Omit("id", "account_id", "created_at").
		Updates(bookingM)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("invalid booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// Delete removes a booking by its ID.
func (repo *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookingModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:               data.ID,
		AccountID:        data.AccountID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Phone:            data.Phone,
		Address:          data.Address,
		PickupDate:       data.PickupDate,
		WasteType:        entity.WasteType(data.WasteType),
		Amount:           data.Amount,
		OrderStatus:      entity.OrderStatus(data.OrderStatus),
		DeliveryStatus:   data.DeliveryStatus,
		PaymentStatus:    data.PaymentStatus,
		PaymentReference: data.PaymentReference,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:               data.ID,
		AccountID:        data.AccountID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Phone:            data.Phone,
		Address:          data.Address,
		PickupDate:       data.PickupDate,
		WasteType:        data.WasteType.String(),
		Amount:           data.Amount,
		OrderStatus:      data.OrderStatus.String(),
		DeliveryStatus:   data.DeliveryStatus,
		PaymentStatus:    data.PaymentStatus,
		PaymentReference: data.PaymentReference,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
