package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"zerowaste/internal/domain/entity"
	domainerrors "zerowaste/internal/domain/errors"
	"zerowaste/internal/domain/repository"
	"zerowaste/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterInput(email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		DisplayName: "alice",
		FirstName:   "Alice",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "+2348012345678",
		Password:    testPassword,
	}
}

func TestAccountService_Register(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	token := f.expectVerificationMail("alice@example.com")

	account, err := f.accountSvc.Register(ctx, newRegisterInput("  Alice@Example.com "))
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", account.Email)
	assert.False(t, account.IsActive)
	assert.False(t, account.IsStaff)
	assert.NotEqual(t, testPassword, account.PasswordHash)
	assert.True(t, f.hasher.Check(testPassword, account.PasswordHash))

	subject, err := f.tokens.Verify(*token, entity.PurposeVerify)
	require.NoError(t, err)
	assert.Equal(t, account.ID, subject)
}

func TestAccountService_Register_DuplicateEmailIgnoresCase(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.expectVerificationMail("alice@example.com")

	_, err := f.accountSvc.Register(ctx, newRegisterInput("alice@example.com"))
	require.NoError(t, err)

	_, err = f.accountSvc.Register(ctx, newRegisterInput("ALICE@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAccountService_Register_ConcurrentSameEmail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.expectVerificationMail("bob@example.com")

	emails := []string{"bob@example.com", "BOB@Example.com"}
	results := make([]error, len(emails))

	var wg sync.WaitGroup
	for i, email := range emails {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = f.accountSvc.Register(ctx, newRegisterInput(email))
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	}
	assert.Equal(t, 1, successes)
}

func TestAccountService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
	}{
		{"malformed email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
		{"short display name", func(in *usecase.RegisterInput) { in.DisplayName = "al" }},
		{"phone not E.164", func(in *usecase.RegisterInput) { in.PhoneNumber = "0801-234" }},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			input := newRegisterInput("carol@example.com")
			tt.mutate(input)

			_, err := f.accountSvc.Register(context.Background(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

			_, err = f.accounts.FindByEmail(context.Background(), "carol@example.com")
			assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
		})
	}
}

func TestAccountService_Register_MailFailureStillRegisters(t *testing.T) {
	f := newFixture(t, nil)
	f.mailer.EXPECT().SendVerification(mock.Anything, "dave@example.com", mock.Anything).
		Return(errors.New("smtp unavailable")).Once()

	account, err := f.accountSvc.Register(context.Background(), newRegisterInput("dave@example.com"))
	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestAccountService_Register_MailIsBounded(t *testing.T) {
	f := newFixture(t, nil)
	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()

		return ok && time.Until(deadline) <= mailDispatchTimeout
	})
	f.mailer.EXPECT().SendVerification(hasDeadline, "erin@example.com", mock.Anything).Return(nil).Once()

	_, err := f.accountSvc.Register(context.Background(), newRegisterInput("erin@example.com"))
	require.NoError(t, err)
}

func TestMailContext_IgnoresCallerCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	mailCtx, mailCancel := mailContext(parent)
	defer mailCancel()

	cancel()

	assert.NoError(t, mailCtx.Err())
	_, ok := mailCtx.Deadline()
	assert.True(t, ok)
}

func TestAccountService_VerifyEmail(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	token := f.expectVerificationMail("alice@example.com")

	registered, err := f.accountSvc.Register(ctx, newRegisterInput("alice@example.com"))
	require.NoError(t, err)

	verified, err := f.accountSvc.VerifyEmail(ctx, *token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, verified.ID)
	assert.True(t, verified.IsActive)

	again, err := f.accountSvc.VerifyEmail(ctx, *token)
	require.NoError(t, err)
	assert.True(t, again.IsActive)
}

func TestAccountService_VerifyEmail_RejectsOtherPurposes(t *testing.T) {
	f := newFixture(t, nil)
	account := f.seedAccount(t, "erin@example.com", false, false)

	accessToken, err := f.tokens.Issue(account.ID, entity.PurposeAccess)
	require.NoError(t, err)

	_, err = f.accountSvc.VerifyEmail(context.Background(), accessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))

	stored, err := f.accounts.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestAccountService_VerifyEmail_DeletedAccount(t *testing.T) {
	f := newFixture(t, nil)
	account := f.seedAccount(t, "frank@example.com", false, false)

	token, err := f.tokens.Issue(account.ID, entity.PurposeVerify)
	require.NoError(t, err)
	require.NoError(t, f.accounts.Delete(context.Background(), account.ID))

	_, err = f.accountSvc.VerifyEmail(context.Background(), token)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "grace@example.com", true, false)

	out, err := f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "Grace@Example.com", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, account.ID, out.Account.ID)
	assert.Equal(t, f.tokens.TTL(entity.PurposeAccess), out.ExpiresIn)

	subject, err := f.tokens.Verify(out.AccessToken, entity.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, account.ID, subject)
}

func TestAccountService_Login_GenericFailure(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.seedAccount(t, "heidi@example.com", true, false)

	_, err := f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "heidi@example.com", Password: "wrong-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))

	_, err = f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestAccountService_Login_InactivePolicy(t *testing.T) {
	f := newFixture(t, nil)
	f.seedAccount(t, "ivan@example.com", false, false)

	_, err := f.accountSvc.Login(context.Background(), &usecase.LoginInput{Email: "ivan@example.com", Password: testPassword})
	require.NoError(t, err)

	cfg := newTestConfig()
	cfg.Auth.RequireVerifiedLogin = true
	strict := newFixture(t, cfg)
	strict.seedAccount(t, "ivan@example.com", false, false)

	_, err = strict.accountSvc.Login(context.Background(), &usecase.LoginInput{Email: "ivan@example.com", Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotActive))
}

func TestAccountService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	f := newFixture(t, nil)
	existing := f.seedAccount(t, "judy@example.com", true, false)

	err := f.accountSvc.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	f.mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
	stored, err := f.accounts.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.PasswordHash, stored.PasswordHash)
}

func TestAccountService_PasswordResetFlow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "ken@example.com", true, false)

	var resetToken string
	f.mailer.EXPECT().SendPasswordReset(mock.Anything, "ken@example.com", mock.Anything).
		Run(func(_ context.Context, _ string, token string) {
			resetToken = token
		}).
		Return(nil).Once()

	require.NoError(t, f.accountSvc.RequestPasswordReset(ctx, "KEN@example.com"))
	require.NotEmpty(t, resetToken)

	// A reset token is useless as an access token.
	_, err := f.accountSvc.Authenticate(ctx, resetToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))

	err = f.accountSvc.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: resetToken, NewPassword: "a-brand-new-secret"})
	require.NoError(t, err)

	_, err = f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "ken@example.com", Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))

	out, err := f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "ken@example.com", Password: "a-brand-new-secret"})
	require.NoError(t, err)
	assert.Equal(t, account.ID, out.Account.ID)
}

func TestAccountService_ResetPassword_InactiveAccount(t *testing.T) {
	f := newFixture(t, nil)
	account := f.seedAccount(t, "leo@example.com", false, false)

	token, err := f.tokens.Issue(account.ID, entity.PurposeReset)
	require.NoError(t, err)

	err = f.accountSvc.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: token, NewPassword: "another-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotActive))

	cfg := newTestConfig()
	cfg.Auth.AllowInactiveReset = true
	lenient := newFixture(t, cfg)
	inactive := lenient.seedAccount(t, "leo@example.com", false, false)

	token, err = lenient.tokens.Issue(inactive.ID, entity.PurposeReset)
	require.NoError(t, err)
	require.NoError(t, lenient.accountSvc.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: token, NewPassword: "another-password"}))
}

func TestAccountService_ResetPassword_RejectsVerifyToken(t *testing.T) {
	f := newFixture(t, nil)
	account := f.seedAccount(t, "mallory@example.com", true, false)

	token, err := f.tokens.Issue(account.ID, entity.PurposeVerify)
	require.NoError(t, err)

	err = f.accountSvc.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: token, NewPassword: "another-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrTokenPurposeMismatch))
}

func TestAccountService_Authenticate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "nina@example.com", true, true)

	token, err := f.tokens.Issue(account.ID, entity.PurposeAccess)
	require.NoError(t, err)

	found, err := f.accountSvc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.True(t, found.IsStaff)

	_, err = f.accountSvc.Authenticate(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	require.NoError(t, f.accounts.Delete(ctx, account.ID))
	_, err = f.accountSvc.Authenticate(ctx, token)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "oscar@example.com", true, false)
	other := f.seedAccount(t, "taken@example.com", true, false)
	actor := usecase.ActorFromAccount(account)

	updated, err := f.accountSvc.UpdateProfile(ctx, actor, &usecase.ProfilePatch{
		DisplayName: strPtr("Oscar W"),
		PhoneNumber: strPtr("+14155552671"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Oscar W", updated.DisplayName)
	assert.Equal(t, "+14155552671", updated.PhoneNumber)
	assert.Equal(t, "oscar@example.com", updated.Email)

	_, err = f.accountSvc.UpdateProfile(ctx, actor, &usecase.ProfilePatch{Email: strPtr(other.Email)})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	_, err = f.accountSvc.UpdateProfile(ctx, actor, &usecase.ProfilePatch{DisplayName: strPtr("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAccountService_ReplaceProfile(t *testing.T) {
	f := newFixture(t, nil)
	account := f.seedAccount(t, "peggy@example.com", true, false)

	replaced, err := f.accountSvc.ReplaceProfile(context.Background(), usecase.ActorFromAccount(account), &usecase.ProfileInput{
		DisplayName: "peggy",
		FirstName:   "Peggy",
		Email:       "Peggy.New@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "peggy.new@example.com", replaced.Email)
	assert.Equal(t, "Peggy", replaced.FirstName)
	assert.Empty(t, replaced.LastName)
	assert.Empty(t, replaced.PhoneNumber)
}

func TestAccountService_ChangePassword(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "quinn@example.com", true, false)
	actor := usecase.ActorFromAccount(account)

	err := f.accountSvc.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{CurrentPassword: "wrong-password", NewPassword: "next-password"})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))

	require.NoError(t, f.accountSvc.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{CurrentPassword: testPassword, NewPassword: "next-password"}))

	_, err = f.accountSvc.Login(ctx, &usecase.LoginInput{Email: "quinn@example.com", Password: "next-password"})
	require.NoError(t, err)
}

func TestAccountService_DeleteAccountCascades(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	account := f.seedAccount(t, "rupert@example.com", true, false)
	booking := f.seedBooking(t, account, "organic")
	actor := usecase.ActorFromAccount(account)

	require.NoError(t, f.accountSvc.DeleteAccount(ctx, actor))

	_, err := f.accounts.FindByID(ctx, account.ID)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
	_, err = f.bookings.FindByID(ctx, booking.ID)
	assert.True(t, errors.Is(err, repository.ErrBookingNotFound))

	err = f.accountSvc.DeleteAccount(ctx, actor)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
