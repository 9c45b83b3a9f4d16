package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/service"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFlow_RegisterVerifyLoginBook(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	verifyToken := f.expectVerificationMail("alice@example.com")

	_, err := f.accountSvc.Register(ctx, newRegisterInput("alice@example.com"))
	require.NoError(t, err)

	_, err = f.accountSvc.VerifyEmail(ctx, *verifyToken)
	require.NoError(t, err)

	login, err := f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: testPassword})
	require.NoError(t, err)

	caller, err := f.accountSvc.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	actor := usecase.ActorFromAccount(caller)

	booking, err := f.bookingSvc.Create(ctx, actor, newBookingInput("Plastic"))
	require.NoError(t, err)
	assert.Equal(t, int64(2000), booking.Amount)
	assert.Equal(t, entity.WastePlastic, booking.WasteType)
	assert.Equal(t, entity.OrderPending, booking.OrderStatus)
	assert.False(t, booking.DeliveryStatus)
	assert.False(t, booking.PaymentStatus)
	assert.Equal(t, time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC), booking.PickupDate)

	bookings, err := f.bookingSvc.ListByOwner(ctx, actor)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)
	assert.Equal(t, "12 Lane", bookings[0].Address)
	assert.Equal(t, entity.OrderPending, bookings[0].OrderStatus)

	assert.Equal(t, []string{service.BookingEventCreated}, f.publishedTypes())
}

func TestBookingService_Create_Pricing(t *testing.T) {
	tests := []struct {
		wasteType string
		expected  int64
	}{
		{"organic", 1000},
		{"plastic_waste", 2000},
		{"MEDICAL", 5000},
		{"Industrial", 10000},
	}

	f := newFixture(t, nil)
	owner := f.seedAccount(t, "pricing@example.com", true, false)

	for _, tt := range tests {
		t.Run(tt.wasteType, func(t *testing.T) {
			booking := f.seedBooking(t, owner, tt.wasteType)
			assert.Equal(t, tt.expected, booking.Amount)
		})
	}
}

func TestBookingService_Create_InvalidInput(t *testing.T) {
	f := newFixture(t, nil)
	owner := f.seedAccount(t, "invalid@example.com", true, false)
	actor := usecase.ActorFromAccount(owner)

	tests := []struct {
		name   string
		mutate func(in *usecase.BookingInput)
	}{
		{"unknown waste type", func(in *usecase.BookingInput) { in.WasteType = "glass" }},
		{"missing address", func(in *usecase.BookingInput) { in.Address = "  " }},
		{"missing pickup date", func(in *usecase.BookingInput) { in.PickupDate = time.Time{} }},
		{"missing first name", func(in *usecase.BookingInput) { in.FirstName = "" }},
		{"phone not E.164", func(in *usecase.BookingInput) { in.Phone = "12-34" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newBookingInput("organic")
			tt.mutate(input)

			_, err := f.bookingSvc.Create(context.Background(), actor, input)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}

	bookings, err := f.bookingSvc.ListByOwner(context.Background(), actor)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingService_OtherAccountsAreForbidden(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.seedAccount(t, "alice@example.com", true, false)
	bob := f.seedAccount(t, "bob@example.com", true, false)
	booking := f.seedBooking(t, alice, "organic")
	intruder := usecase.ActorFromAccount(bob)

	_, err := f.bookingSvc.Get(ctx, intruder, booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.bookingSvc.Update(ctx, intruder, booking.ID, &usecase.BookingPatch{Address: strPtr("99 Elsewhere")})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.bookingSvc.Replace(ctx, intruder, booking.ID, newBookingInput("medical"))
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	err = f.bookingSvc.Delete(ctx, intruder, booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.bookingSvc.AdvanceDeliveryStatus(ctx, intruder, booking.ID, "IN_TRANSIT")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	bobsBookings, err := f.bookingSvc.ListByOwner(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, bobsBookings)

	stored, err := f.bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Lane", stored.Address)
	assert.Equal(t, entity.WasteOrganic, stored.WasteType)
	assert.Equal(t, entity.OrderPending, stored.OrderStatus)
}

func TestBookingService_StaffNeedsOverride(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.seedAccount(t, "alice@example.com", true, false)
	staff := f.seedAccount(t, "staff@example.com", true, true)
	booking := f.seedBooking(t, alice, "organic")
	actor := usecase.ActorFromAccount(staff)

	_, err := f.bookingSvc.Get(ctx, actor, booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	found, err := f.bookingSvc.Get(ctx, actor.AsStaff(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, found.ID)

	// Non-staff callers gain nothing from the override.
	bob := usecase.ActorFromAccount(f.seedAccount(t, "bob@example.com", true, false))
	_, err = f.bookingSvc.Get(ctx, bob.AsStaff(), booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookingService_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	actor := usecase.ActorFromAccount(f.seedAccount(t, "ghost@example.com", true, false))

	_, err := f.bookingSvc.Get(context.Background(), actor, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	err = f.bookingSvc.Delete(context.Background(), actor, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBookingService_UpdateRepricesWasteType(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := f.seedAccount(t, "owner@example.com", true, false)
	booking := f.seedBooking(t, owner, "organic")
	actor := usecase.ActorFromAccount(owner)

	updated, err := f.bookingSvc.Update(ctx, actor, booking.ID, &usecase.BookingPatch{
		WasteType: strPtr("industrial"),
		Address:   strPtr("7 Harbour Road"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WasteIndustrial, updated.WasteType)
	assert.Equal(t, int64(10000), updated.Amount)
	assert.Equal(t, "7 Harbour Road", updated.Address)
	assert.Equal(t, "Alice", updated.FirstName)

	replaced, err := f.bookingSvc.Replace(ctx, actor, booking.ID, newBookingInput("medical"))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), replaced.Amount)
	assert.Equal(t, "12 Lane", replaced.Address)
}

func TestBookingService_PaidBookingKeepsWasteType(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := f.seedAccount(t, "paid@example.com", true, false)
	booking := f.seedBooking(t, owner, "plastic")

	booking.MarkPaid("ref-1")
	require.NoError(t, f.bookings.Update(ctx, booking))

	_, err := f.bookingSvc.Update(ctx, usecase.ActorFromAccount(owner), booking.ID, &usecase.BookingPatch{WasteType: strPtr("organic")})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	stored, err := f.bookings.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), stored.Amount)
}

func TestBookingService_Delete(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := f.seedAccount(t, "delete@example.com", true, false)
	booking := f.seedBooking(t, owner, "organic")
	actor := usecase.ActorFromAccount(owner)

	require.NoError(t, f.bookingSvc.Delete(ctx, actor, booking.ID))

	_, err := f.bookingSvc.Get(ctx, actor, booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	assert.Equal(t, []string{service.BookingEventCreated, service.BookingEventCancelled}, f.publishedTypes())
}

func TestBookingService_AdvanceDeliveryStatus(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := f.seedAccount(t, "advance@example.com", true, false)
	staff := f.seedAccount(t, "collector@example.com", true, true)
	booking := f.seedBooking(t, owner, "organic")

	// Staff without the override are treated like any other account.
	_, err := f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(staff), booking.ID, "in_transit")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	inTransit, err := f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(staff).AsStaff(), booking.ID, "in_transit")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInTransit, inTransit.OrderStatus)
	assert.False(t, inTransit.DeliveryStatus)

	_, err = f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(owner), booking.ID, "PENDING")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))

	_, err = f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(owner), booking.ID, "IN_TRANSIT")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))

	completed, err := f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(owner), booking.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, completed.OrderStatus)
	assert.True(t, completed.DeliveryStatus)

	_, err = f.bookingSvc.AdvanceDeliveryStatus(ctx, usecase.ActorFromAccount(owner), booking.ID, "shipped")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	assert.Equal(t, []string{
		service.BookingEventCreated,
		service.BookingEventAdvanced,
		service.BookingEventAdvanced,
	}, f.publishedTypes())
}

func TestBookingService_PickupQR(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	owner := f.seedAccount(t, "qr@example.com", true, false)
	other := f.seedAccount(t, "other@example.com", true, false)
	staff := f.seedAccount(t, "scanner@example.com", true, true)
	booking := f.seedBooking(t, owner, "medical")

	png, err := f.bookingSvc.PickupQR(ctx, usecase.ActorFromAccount(owner), booking.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = f.bookingSvc.PickupQR(ctx, usecase.ActorFromAccount(staff), booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.bookingSvc.PickupQR(ctx, usecase.ActorFromAccount(staff).AsStaff(), booking.ID)
	require.NoError(t, err)

	_, err = f.bookingSvc.PickupQR(ctx, usecase.ActorFromAccount(other), booking.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookingService_PublishFailureDoesNotFailCreate(t *testing.T) {
	f := newFixture(t, nil)
	owner := f.seedAccount(t, "flaky@example.com", true, false)

	failing := NewBookingService(BookingServiceParams{
		TxManager:   f.txManager,
		BookingRepo: f.bookings,
		QRService:   nil,
		Publisher:   failingPublisher{},
		Logger:      newDiscardLogger(),
	})

	booking, err := failing.Create(context.Background(), usecase.ActorFromAccount(owner), newBookingInput("organic"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
}

type failingPublisher struct{}

func (failingPublisher) PublishBookingEvent(context.Context, *service.BookingEvent) error {
	return errors.New("broker unavailable")
}

func (failingPublisher) Close() error { return nil }
