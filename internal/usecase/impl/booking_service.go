package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewBookingService creates a new booking service instance
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a pickup for the caller, priced by its waste category.
func (srv *bookingService) Create(ctx context.Context, actor usecase.Actor, input *usecase.BookingInput) (*entity.Booking, error) {
	wasteType, err := validateBookingInput(input)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		AccountID:   actor.AccountID,
		OrderStatus: entity.OrderPending,
	}
	assignBookingInput(booking, input)
	booking.SetWasteType(wasteType)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewBookingRepository().Create(ctx, booking); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("booking owner no longer exists")
			}

			return errors.Wrap(err, "failed to create booking")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute booking creation transaction")
	}

	srv.log(ctx).Info("Booking created",
		slog.String("bookingID", booking.ID.String()),
		slog.String("wasteType", booking.WasteType.String()),
		slog.Int64("amount", booking.Amount),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), newBookingEvent(ctx, service.BookingEventCreated, booking))

	return booking, nil
}

// ListByOwner returns the caller's bookings, newest first.
func (srv *bookingService) ListByOwner(ctx context.Context, actor usecase.Actor) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindByAccount(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// Get returns a booking the actor may access.
func (srv *bookingService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, bookingLookupError(err)
	}

	if !actor.CanAccess(booking.AccountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("booking belongs to another account")
	}

	return booking, nil
}

// Update applies the non-nil fields of patch under a row lock.
func (srv *bookingService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, patch *usecase.BookingPatch) (*entity.Booking, error) {
	return srv.mutate(ctx, actor, id, func(booking *entity.Booking) error {
		return applyBookingPatch(booking, patch)
	})
}

// Replace overwrites every customer-chosen field under a row lock.
func (srv *bookingService) Replace(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.BookingInput) (*entity.Booking, error) {
	wasteType, err := validateBookingInput(input)
	if err != nil {
		return nil, err
	}

	return srv.mutate(ctx, actor, id, func(booking *entity.Booking) error {
		if err := changeWasteType(booking, wasteType); err != nil {
			return err
		}
		assignBookingInput(booking, input)

		return nil
	})
}

// mutate loads the booking FOR UPDATE, checks ownership, applies change and saves it in one transaction.
func (srv *bookingService) mutate(ctx context.Context, actor usecase.Actor, id uuid.UUID, change func(*entity.Booking) error) (*entity.Booking, error) {
	var updated *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		booking, err := bookingRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return bookingLookupError(err)
		}

		if !actor.CanAccess(booking.AccountID) {
			return domainerrors.ErrForbidden.WrapMessage("booking belongs to another account")
		}

		if err := change(booking); err != nil {
			return err
		}

		if err := bookingRepo.Update(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to update booking")
		}
		updated = booking

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute booking update transaction")
	}

	srv.log(ctx).Debug("Booking updated", slog.String("bookingID", id.String()))

	return updated, nil
}

// Delete cancels a booking the actor may access.
func (srv *bookingService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	var deleted *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		booking, err := bookingRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return bookingLookupError(err)
		}

		if !actor.CanAccess(booking.AccountID) {
			return domainerrors.ErrForbidden.WrapMessage("booking belongs to another account")
		}

		if err := bookingRepo.Delete(ctx, id); err != nil {
			return bookingLookupError(err)
		}
		deleted = booking

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute booking deletion transaction")
	}

	srv.log(ctx).Info("Booking deleted", slog.String("bookingID", id.String()))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newBookingEvent(ctx, service.BookingEventCancelled, deleted))

	return nil
}

// AdvanceDeliveryStatus moves the order strictly forward. Only the owner, or
// staff acting through the explicit override, may advance it.
func (srv *bookingService) AdvanceDeliveryStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, target string) (*entity.Booking, error) {
	next, ok := entity.ParseOrderStatus(target)
	if !ok {
		return nil, invalid("order status must be one of PENDING, IN_TRANSIT, COMPLETED")
	}

	var advanced *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		booking, err := bookingRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return bookingLookupError(err)
		}

		if !actor.CanAccess(booking.AccountID) {
			return domainerrors.ErrForbidden.WrapMessage("booking belongs to another account")
		}

		from := booking.OrderStatus
		if !booking.Advance(next) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				"cannot move from " + from.String() + " to " + next.String(),
			)
		}

		if err := bookingRepo.Update(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to save booking status")
		}
		advanced = booking

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute booking status transaction")
	}

	srv.log(ctx).Info("Booking status advanced",
		slog.String("bookingID", id.String()),
		slog.String("status", advanced.OrderStatus.String()),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), newBookingEvent(ctx, service.BookingEventAdvanced, advanced))

	return advanced, nil
}

// PickupQR renders the QR code for a booking the actor may access.
func (srv *bookingService) PickupQR(ctx context.Context, actor usecase.Actor, id uuid.UUID) ([]byte, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, bookingLookupError(err)
	}

	if !actor.CanAccess(booking.AccountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("booking belongs to another account")
	}

	png, err := srv.qrService.GeneratePickupQR(booking.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

func validateBookingInput(input *usecase.BookingInput) (entity.WasteType, error) {
	if err := validateName("first name", input.FirstName, true); err != nil {
		return "", err
	}
	if err := validateName("last name", input.LastName, true); err != nil {
		return "", err
	}
	if strings.TrimSpace(input.Phone) == "" {
		return "", invalid("phone is required")
	}
	if err := validatePhone(input.Phone); err != nil {
		return "", err
	}
	if err := validateAddress(input.Address); err != nil {
		return "", err
	}
	if input.PickupDate.IsZero() {
		return "", invalid("pickup date is required")
	}

	wasteType, ok := entity.ParseWasteType(input.WasteType)
	if !ok {
		return "", invalid("waste type must be one of organic, plastic, medical, industrial")
	}

	return wasteType, nil
}

func validateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return invalid("address is required")
	}
	if len(address) > maxAddressLength {
		return invalid("address is too long")
	}

	return nil
}

func assignBookingInput(booking *entity.Booking, input *usecase.BookingInput) {
	booking.FirstName = strings.TrimSpace(input.FirstName)
	booking.LastName = strings.TrimSpace(input.LastName)
	booking.Phone = input.Phone
	booking.Address = strings.TrimSpace(input.Address)
	booking.PickupDate = truncateToDate(input.PickupDate)
}

func applyBookingPatch(booking *entity.Booking, patch *usecase.BookingPatch) error {
	if patch.FirstName != nil {
		if err := validateName("first name", *patch.FirstName, true); err != nil {
			return err
		}
		booking.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		if err := validateName("last name", *patch.LastName, true); err != nil {
			return err
		}
		booking.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Phone != nil {
		if strings.TrimSpace(*patch.Phone) == "" {
			return invalid("phone is required")
		}
		if err := validatePhone(*patch.Phone); err != nil {
			return err
		}
		booking.Phone = *patch.Phone
	}
	if patch.Address != nil {
		if err := validateAddress(*patch.Address); err != nil {
			return err
		}
		booking.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.PickupDate != nil {
		if patch.PickupDate.IsZero() {
			return invalid("pickup date is required")
		}
		booking.PickupDate = truncateToDate(*patch.PickupDate)
	}
	if patch.WasteType != nil {
		wasteType, ok := entity.ParseWasteType(*patch.WasteType)
		if !ok {
			return invalid("waste type must be one of organic, plastic, medical, industrial")
		}
		if err := changeWasteType(booking, wasteType); err != nil {
			return err
		}
	}

	return nil
}

// changeWasteType reprices the booking; a paid booking keeps its category.
func changeWasteType(booking *entity.Booking, wasteType entity.WasteType) error {
	if booking.WasteType == wasteType {
		return nil
	}
	if booking.PaymentStatus {
		return invalid("waste type of a paid booking cannot change")
	}
	booking.SetWasteType(wasteType)

	return nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
