package impl

import (
	"context"
	"fmt"
	"testing"

	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_RequiresStaff(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	customer := f.seedAccount(t, "customer@example.com", true, false)
	actor := usecase.ActorFromAccount(customer)

	_, err := f.adminSvc.ListAccounts(ctx, actor, 0, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.adminSvc.GetAccount(ctx, actor, customer.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	err = f.adminSvc.DeleteAccount(ctx, actor, customer.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = f.adminSvc.CreateAccount(ctx, actor, &usecase.AccountInput{RegisterInput: *newRegisterInput("new@example.com")})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	active := true
	_, err = f.adminSvc.UpdateAccount(ctx, actor, customer.ID, &usecase.AccountPatch{IsActive: &active})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_ListAccountsPages(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	staff := usecase.ActorFromAccount(f.seedAccount(t, "admin@example.com", true, true))
	for i := range 4 {
		f.seedAccount(t, fmt.Sprintf("user%d@example.com", i), true, false)
	}

	all, err := f.adminSvc.ListAccounts(ctx, staff, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	page, err := f.adminSvc.ListAccounts(ctx, staff, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[1].ID, page[0].ID)

	capped, err := f.adminSvc.ListAccounts(ctx, staff, -3, usecase.MaxPageSize+50)
	require.NoError(t, err)
	assert.Len(t, capped, 5)
}

func TestAdminService_GetAndDeleteAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	staff := usecase.ActorFromAccount(f.seedAccount(t, "admin@example.com", true, true))
	target := f.seedAccount(t, "target@example.com", true, false)
	booking := f.seedBooking(t, target, "plastic")

	found, err := f.adminSvc.GetAccount(ctx, staff, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "target@example.com", found.Email)

	_, err = f.adminSvc.GetAccount(ctx, staff, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	require.NoError(t, f.adminSvc.DeleteAccount(ctx, staff, target.ID))

	_, err = f.bookings.FindByID(ctx, booking.ID)
	assert.True(t, errors.Is(err, repository.ErrBookingNotFound))
}

func TestAdminService_CreateAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	staff := usecase.ActorFromAccount(f.seedAccount(t, "admin@example.com", true, true))

	input := &usecase.AccountInput{
		RegisterInput: *newRegisterInput("Collector@Example.com"),
		IsActive:      true,
		IsStaff:       true,
	}
	account, err := f.adminSvc.CreateAccount(ctx, staff, input)
	require.NoError(t, err)
	assert.Equal(t, "collector@example.com", account.Email)
	assert.True(t, account.IsActive)
	assert.True(t, account.IsStaff)
	assert.NotEqual(t, testPassword, account.PasswordHash)
	assert.True(t, f.hasher.Check(testPassword, account.PasswordHash))

	// The new account can log in straight away.
	out, err := f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "collector@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, account.ID, out.Account.ID)

	_, err = f.adminSvc.CreateAccount(ctx, staff, &usecase.AccountInput{RegisterInput: *newRegisterInput("COLLECTOR@example.com")})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	bad := newRegisterInput("not-an-email")
	_, err = f.adminSvc.CreateAccount(ctx, staff, &usecase.AccountInput{RegisterInput: *bad})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAdminService_UpdateAccount(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	admin := f.seedAccount(t, "admin@example.com", true, true)
	staff := usecase.ActorFromAccount(admin)
	target := f.seedAccount(t, "target@example.com", false, false)
	f.seedAccount(t, "taken@example.com", true, false)

	active, promote := true, true
	name := "Collector"
	updated, err := f.adminSvc.UpdateAccount(ctx, staff, target.ID, &usecase.AccountPatch{
		ProfilePatch: usecase.ProfilePatch{DisplayName: &name},
		IsActive:     &active,
		IsStaff:      &promote,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.IsStaff)
	assert.Equal(t, "Collector", updated.DisplayName)
	assert.Equal(t, "target@example.com", updated.Email)

	stored, err := f.accounts.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsStaff)

	taken := "Taken@example.com"
	_, err = f.adminSvc.UpdateAccount(ctx, staff, target.ID, &usecase.AccountPatch{ProfilePatch: usecase.ProfilePatch{Email: &taken}})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	_, err = f.adminSvc.UpdateAccount(ctx, staff, uuid.New(), &usecase.AccountPatch{IsActive: &active})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	demote := false
	_, err = f.adminSvc.UpdateAccount(ctx, staff, admin.ID, &usecase.AccountPatch{IsStaff: &demote})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
