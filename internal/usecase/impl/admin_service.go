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

const defaultPageSize = 20

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService creates a new administration service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireStaff(actor usecase.Actor) error {
	if !actor.IsStaff {
		return domainerrors.ErrForbidden.WrapMessage("staff access required")
	}

	return nil
}

// ListAccounts pages through all accounts; limit is capped at usecase.MaxPageSize.
func (srv *adminService) ListAccounts(ctx context.Context, actor usecase.Actor, offset, limit int) ([]*entity.Account, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	offset = max(offset, 0)
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, usecase.MaxPageSize)

	accounts, err := srv.accountRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetAccount returns any account to a staff member.
func (srv *adminService) GetAccount(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Account, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, accountLookupError(err)
	}

	return account, nil
}

// CreateAccount opens an account on behalf of staff. No verification mail is
// sent; the activation flag is set directly.
func (srv *adminService) CreateAccount(ctx context.Context, actor usecase.Actor, input *usecase.AccountInput) (*entity.Account, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)
	if err := validateRegistration(&input.RegisterInput, email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hashedPassword,
		IsActive:     input.IsActive,
		IsStaff:      input.IsStaff,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().Create(ctx, account)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	srv.log(ctx).Info("Staff created account",
		slog.String("staffID", actor.AccountID.String()),
		slog.String("accountID", account.ID.String()),
		slog.Bool("isStaff", account.IsStaff),
	)

	return account, nil
}

// UpdateAccount applies the non-nil fields of patch to any account. Staff
// cannot revoke their own staff flag.
func (srv *adminService) UpdateAccount(ctx context.Context, actor usecase.Actor, id uuid.UUID, patch *usecase.AccountPatch) (*entity.Account, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	if id == actor.AccountID && patch.IsStaff != nil && !*patch.IsStaff {
		return nil, domainerrors.ErrInvalidInput.WithDetails("staff cannot revoke their own staff access")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			return accountLookupError(err)
		}

		if err := applyProfilePatch(account, &patch.ProfilePatch); err != nil {
			return err
		}
		if patch.IsActive != nil {
			account.IsActive = *patch.IsActive
		}
		if patch.IsStaff != nil {
			account.IsStaff = *patch.IsStaff
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Info("Staff updated account",
		slog.String("staffID", actor.AccountID.String()),
		slog.String("accountID", id.String()),
	)

	return updated, nil
}

// DeleteAccount removes any account with everything it owns.
func (srv *adminService) DeleteAccount(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	srv.log(ctx).Info("Staff deleting account",
		slog.String("staffID", actor.AccountID.String()),
		slog.String("accountID", id.String()),
	)

	return deleteAccount(ctx, srv.txManager, srv.log(ctx), id)
}
