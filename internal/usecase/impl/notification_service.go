package impl

import (
	"context"
	"log/slog"

	deliverycontext "zerowaste/internal/delivery/context"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	accountRepo repository.AccountRepository
	mailer      service.AccountMailer
	logger      *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Mailer      service.AccountMailer
	Logger      *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		accountRepo: params.AccountRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleBookingEvent mails the booking owner about the event. Storage and mail
// outages are retryable; malformed events and deleted owners are dropped.
func (srv *notificationService) HandleBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	accountID, err := uuid.Parse(event.AccountID)
	if err != nil {
		return errors.Wrapf(err, "event %s has an invalid account id", event.EventID)
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Booking owner no longer exists, dropping event",
				slog.String("event_id", event.EventID),
				slog.String("account_id", event.AccountID),
			)

			return nil
		}

		return usecase.NewRetryableError(errors.Wrap(err, "failed to load booking owner"))
	}

	if err := srv.mailer.SendBookingNotice(ctx, account.Email, event); err != nil {
		return usecase.NewRetryableError(errors.Wrap(err, "failed to send booking notice"))
	}

	srv.log(ctx).Info("Booking notice sent",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("booking_id", event.BookingID),
	)

	return nil
}
