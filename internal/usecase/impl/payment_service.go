package impl

import (
	"context"
	"log/slog"
	"strings"

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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPaymentService creates a new payment reconciliation service
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyTransaction asks the gateway about reference and, only on success,
// marks the referenced booking paid and completed.
func (srv *paymentService) VerifyTransaction(ctx context.Context, reference string) (*usecase.PaymentResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, invalid("transaction reference is required")
	}

	verification, err := srv.gateway.Verify(ctx, reference)
	if err != nil {
		srv.log(ctx).Error("Payment gateway verification failed", slog.String("reference", reference), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentGateway.WrapMessage("verify transaction")
	}

	result := &usecase.PaymentResult{
		Success:   verification.Success,
		Reference: verification.Reference,
		Status:    verification.Status,
	}
	if !verification.Success {
		srv.log(ctx).Info("Payment not successful, booking left untouched",
			slog.String("reference", reference),
			slog.String("status", verification.Status),
		)

		return result, nil
	}

	bookingID, err := uuid.Parse(verification.OrderRef)
	if err != nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("transaction does not reference a booking")
	}

	var (
		paid      *entity.Booking
		newlyPaid bool
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		booking, err := bookingRepo.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return bookingLookupError(err)
		}

		// A replayed verification of the same transaction is a no-op.
		if booking.PaymentStatus && booking.PaymentReference == verification.Reference {
			paid = booking

			return nil
		}

		if verification.Amount < booking.Amount {
			return domainerrors.ErrPaymentAmountMismatch.WithDetails("paid amount is below the booking amount")
		}

		booking.MarkPaid(verification.Reference)
		if err := bookingRepo.Update(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to save payment status")
		}
		paid = booking
		newlyPaid = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute payment reconciliation transaction")
	}

	result.Booking = paid
	if newlyPaid {
		srv.log(ctx).Info("Booking paid",
			slog.String("bookingID", paid.ID.String()),
			slog.String("reference", verification.Reference),
			slog.Int64("amount", verification.Amount),
		)
		publishEvent(ctx, srv.publisher, srv.log(ctx), newBookingEvent(ctx, service.BookingEventPaid, paid))
	}

	return result, nil
}
