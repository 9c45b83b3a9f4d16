package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"zerowaste/config"
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

const (
	tokenTypeBearer = "bearer"

	// mailDispatchTimeout caps how long a request waits on the mail provider.
	mailDispatchTimeout = 15 * time.Second
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager            repository.TransactionManager
	accountRepo          repository.AccountRepository
	hasher               service.PasswordHasher
	tokenService         service.TokenService
	mailer               service.AccountMailer
	allowInactiveReset   bool
	requireVerifiedLogin bool
	logger               *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.AccountMailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.allowInactiveReset = params.Config.Auth.AllowInactiveReset
		srv.requireVerifiedLogin = params.Config.Auth.RequireVerifiedLogin
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and mails it a verification link.
// The unique index on the email decides concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	email := entity.NormalizeEmail(input.Email)
	if err := validateRegistration(input, email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Info("Registration rejected, email already registered", slog.String("email", email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))
	srv.sendVerification(ctx, account)

	return account, nil
}

func validateRegistration(input *usecase.RegisterInput, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validateDisplayName(input.DisplayName); err != nil {
		return err
	}
	if err := validateName("first name", input.FirstName, false); err != nil {
		return err
	}
	if err := validateName("last name", input.LastName, false); err != nil {
		return err
	}

	return validatePhone(input.PhoneNumber)
}

// sendVerification mails the verification link; delivery problems are only logged.
func (srv *accountService) sendVerification(ctx context.Context, account *entity.Account) {
	token, err := srv.tokenService.Issue(account.ID, entity.PurposeVerify)
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification token", slog.String("accountID", account.ID.String()), slog.Any("error", err))

		return
	}

	mailCtx, cancel := mailContext(ctx)
	defer cancel()

	if err := srv.mailer.SendVerification(mailCtx, account.Email, token); err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.String("accountID", account.ID.String()), slog.Any("error", err))
	}
}

// VerifyEmail activates the account named by a verify token. Verifying twice is harmless.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := srv.tokenService.Verify(token, entity.PurposeVerify)
	if err != nil {
		return nil, err
	}

	var verified *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return accountLookupError(err)
		}

		if !account.IsActive {
			account.IsActive = true
			if err := accountRepo.Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to activate account")
			}
			srv.log(ctx).Info("Account email verified", slog.String("accountID", account.ID.String()))
		}
		verified = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute email verification transaction")
	}

	return verified, nil
}

// Login exchanges credentials for an access token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Login failed, unknown email")

			return nil, domainerrors.ErrAuthentication
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed, password mismatch", slog.String("accountID", account.ID.String()))

		return nil, domainerrors.ErrAuthentication
	}

	if srv.requireVerifiedLogin && !account.IsActive {
		return nil, domainerrors.ErrAccountNotActive
	}

	accessToken, err := srv.tokenService.Issue(account.ID, entity.PurposeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login successful", slog.String("accountID", account.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   srv.tokenService.TTL(entity.PurposeAccess),
		Account:     account,
	}, nil
}

// RequestPasswordReset mails a reset link when the email belongs to an account.
// The caller sees the same outcome either way.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find account for password reset")
	}

	if !account.IsActive && !srv.allowInactiveReset {
		srv.log(ctx).Info("Password reset requested for inactive account", slog.String("accountID", account.ID.String()))

		return nil
	}

	token, err := srv.tokenService.Issue(account.ID, entity.PurposeReset)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	mailCtx, cancel := mailContext(ctx)
	defer cancel()

	if err := srv.mailer.SendPasswordReset(mailCtx, account.Email, token); err != nil {
		srv.log(ctx).Warn("Failed to send password reset email", slog.String("accountID", account.ID.String()), slog.Any("error", err))
	}

	return nil
}

// ResetPassword replaces the password of the account named by a reset token.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	accountID, err := srv.tokenService.Verify(input.Token, entity.PurposeReset)
	if err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return accountLookupError(err)
		}

		if !account.IsActive && !srv.allowInactiveReset {
			return domainerrors.ErrAccountNotActive
		}

		account.PasswordHash = hashedPassword

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to save new password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset", slog.String("accountID", accountID.String()))

	return nil
}

// Authenticate resolves an access token to the account it was issued for.
func (srv *accountService) Authenticate(ctx context.Context, accessToken string) (*entity.Account, error) {
	accountID, err := srv.tokenService.Verify(accessToken, entity.PurposeAccess)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAuthentication.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load authenticated account")
	}

	return account, nil
}

// GetProfile returns the caller's own account.
func (srv *accountService) GetProfile(ctx context.Context, actor usecase.Actor) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		return nil, accountLookupError(err)
	}

	return account, nil
}

// UpdateProfile applies the non-nil fields of patch to the caller's account.
func (srv *accountService) UpdateProfile(ctx context.Context, actor usecase.Actor, patch *usecase.ProfilePatch) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, actor.AccountID)
		if err != nil {
			return accountLookupError(err)
		}

		if err := applyProfilePatch(account, patch); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Debug("Profile updated", slog.String("accountID", actor.AccountID.String()))

	return updated, nil
}

// ReplaceProfile overwrites every editable profile field.
func (srv *accountService) ReplaceProfile(ctx context.Context, actor usecase.Actor, input *usecase.ProfileInput) (*entity.Account, error) {
	return srv.UpdateProfile(ctx, actor, input.Patch())
}

func applyProfilePatch(account *entity.Account, patch *usecase.ProfilePatch) error {
	if patch.DisplayName != nil {
		if err := validateDisplayName(*patch.DisplayName); err != nil {
			return err
		}
		account.DisplayName = strings.TrimSpace(*patch.DisplayName)
	}
	if patch.FirstName != nil {
		if err := validateName("first name", *patch.FirstName, false); err != nil {
			return err
		}
		account.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		if err := validateName("last name", *patch.LastName, false); err != nil {
			return err
		}
		account.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.PhoneNumber != nil {
		if err := validatePhone(*patch.PhoneNumber); err != nil {
			return err
		}
		account.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		email := entity.NormalizeEmail(*patch.Email)
		if err := validateEmail(email); err != nil {
			return err
		}
		account.Email = email
	}
	if patch.ProfilePicture != nil {
		account.ProfilePicture = strings.TrimSpace(*patch.ProfilePicture)
	}

	return nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (srv *accountService) ChangePassword(ctx context.Context, actor usecase.Actor, input *usecase.ChangePasswordInput) error {
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, actor.AccountID)
		if err != nil {
			return accountLookupError(err)
		}

		if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
			return domainerrors.ErrAuthentication.WrapMessage("current password does not match")
		}

		account.PasswordHash = hashedPassword

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to save new password")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.String("accountID", actor.AccountID.String()))

	return nil
}

// DeleteAccount removes the caller's account together with its bookings and reviews.
func (srv *accountService) DeleteAccount(ctx context.Context, actor usecase.Actor) error {
	return deleteAccount(ctx, srv.txManager, srv.log(ctx), actor.AccountID)
}

func deleteAccount(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger, accountID uuid.UUID) error {
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAccountRepository().Delete(ctx, accountID); err != nil {
			return accountLookupError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	logger.Info("Account deleted", slog.String("accountID", accountID.String()))

	return nil
}

// mailContext detaches mail delivery from client cancellation and bounds it by mailDispatchTimeout.
func mailContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), mailDispatchTimeout)
}
