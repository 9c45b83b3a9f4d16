package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"zerowaste/config"
	"zerowaste/internal/domain/entity"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/infra/auth"
	"zerowaste/internal/infra/persistence/memory"
	"zerowaste/internal/infra/qrcode"
	mockSvc "zerowaste/internal/mocks/service"
	"zerowaste/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	}
}

type testFixture struct {
	store     *memory.Store
	txManager repository.TransactionManager
	accounts  repository.AccountRepository
	bookings  repository.BookingRepository
	reviews   repository.ReviewRepository

	hasher  service.PasswordHasher
	tokens  service.TokenService
	mailer  *mockSvc.MockAccountMailer
	gateway *mockSvc.MockPaymentGateway

	publisher *mockSvc.MockEventPublisher
	eventsMu  sync.Mutex
	events    []*service.BookingEvent

	accountSvc      usecase.AccountUsecase
	bookingSvc      usecase.BookingUsecase
	paymentSvc      usecase.PaymentUsecase
	reviewSvc       usecase.ReviewUsecase
	adminSvc        usecase.AdminUsecase
	notificationSvc usecase.NotificationUsecase
}

// newFixture wires every service over one memory store. Published events are
// recorded; mail and gateway calls must be expected by each test.
func newFixture(t *testing.T, cfg *config.Config) *testFixture {
	t.Helper()

	if cfg == nil {
		cfg = newTestConfig()
	}

	tokens, err := auth.NewJWTServiceWithClock(&config.TokenConfig{
		Algorithm: "HS256",
		AccessTTL: 8 * 24 * time.Hour,
		VerifyTTL: 8 * 24 * time.Hour,
		ResetTTL:  10 * time.Minute,
	}, []byte("usecase_test_secret_with_enough_bytes"), time.Now)
	require.NoError(t, err)

	store := memory.NewStore()
	f := &testFixture{
		store:     store,
		txManager: memory.NewTransactionManager(store),
		accounts:  memory.NewAccountRepository(store),
		bookings:  memory.NewBookingRepository(store),
		reviews:   memory.NewReviewRepository(store),
		hasher:    auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost),
		tokens:    tokens,
		mailer:    mockSvc.NewMockAccountMailer(t),
		gateway:   mockSvc.NewMockPaymentGateway(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	f.publisher.EXPECT().PublishBookingEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.BookingEvent) error {
			f.eventsMu.Lock()
			defer f.eventsMu.Unlock()
			f.events = append(f.events, event)

			return nil
		}).Maybe()

	logger := newDiscardLogger()
	f.accountSvc = NewAccountService(AccountServiceParams{
		TxManager:    f.txManager,
		AccountRepo:  f.accounts,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Mailer:       f.mailer,
		Config:       cfg,
		Logger:       logger,
	})
	f.bookingSvc = NewBookingService(BookingServiceParams{
		TxManager:   f.txManager,
		BookingRepo: f.bookings,
		QRService:   qrcode.NewQRCodeServiceWithOptions(128, "M"),
		Publisher:   f.publisher,
		Logger:      logger,
	})
	f.paymentSvc = NewPaymentService(PaymentServiceParams{
		TxManager: f.txManager,
		Gateway:   f.gateway,
		Publisher: f.publisher,
		Logger:    logger,
	})
	f.reviewSvc = NewReviewService(ReviewServiceParams{
		TxManager:  f.txManager,
		ReviewRepo: f.reviews,
		Logger:     logger,
	})
	f.adminSvc = NewAdminService(AdminServiceParams{
		TxManager:   f.txManager,
		AccountRepo: f.accounts,
		Hasher:      f.hasher,
		Logger:      logger,
	})
	f.notificationSvc = NewNotificationService(NotificationServiceParams{
		AccountRepo: f.accounts,
		Mailer:      f.mailer,
		Logger:      logger,
	})

	return f
}

// expectVerificationMail captures the token mailed to email on registration.
func (f *testFixture) expectVerificationMail(email string) *string {
	token := new(string)
	f.mailer.EXPECT().SendVerification(mock.Anything, email, mock.Anything).
		Run(func(_ context.Context, _ string, tok string) {
			*token = tok
		}).
		Return(nil).Once()

	return token
}

// seedAccount stores an account directly, bypassing registration.
func (f *testFixture) seedAccount(t *testing.T, email string, active, staff bool) *entity.Account {
	t.Helper()

	hash, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)

	account := &entity.Account{
		Email:        email,
		DisplayName:  "seeded user",
		PasswordHash: hash,
		IsActive:     active,
		IsStaff:      staff,
	}
	require.NoError(t, f.accounts.Create(context.Background(), account))

	return account
}

func (f *testFixture) seedBooking(t *testing.T, owner *entity.Account, wasteType string) *entity.Booking {
	t.Helper()

	booking, err := f.bookingSvc.Create(context.Background(), usecase.ActorFromAccount(owner), newBookingInput(wasteType))
	require.NoError(t, err)

	return booking
}

func (f *testFixture) publishedTypes() []string {
	f.eventsMu.Lock()
	defer f.eventsMu.Unlock()

	types := make([]string, 0, len(f.events))
	for _, event := range f.events {
		types = append(types, event.Type)
	}

	return types
}

func newBookingInput(wasteType string) *usecase.BookingInput {
	return &usecase.BookingInput{
		FirstName:  "Alice",
		LastName:   "Doe",
		Phone:      "+2348012345678",
		Address:    "12 Lane",
		PickupDate: time.Date(2026, time.November, 3, 15, 30, 0, 0, time.UTC),
		WasteType:  wasteType,
	}
}

func strPtr(s string) *string {
	return &s
}
