package usecase

import (
	"context"
	"time"

	"zerowaste/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	DisplayName string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries a reset token and the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ChangePasswordInput defines the data required to change a known password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ProfilePatch lists the profile fields a caller may change; nil fields are left untouched.
type ProfilePatch struct {
	DisplayName    *string
	FirstName      *string
	LastName       *string
	PhoneNumber    *string
	Email          *string
	ProfilePicture *string
}

// ProfileInput is a full replacement of the editable profile fields.
type ProfileInput struct {
	DisplayName    string
	FirstName      string
	LastName       string
	PhoneNumber    string
	Email          string
	ProfilePicture string
}

// Patch converts a full replacement into a patch touching every field.
func (in *ProfileInput) Patch() *ProfilePatch {
	return &ProfilePatch{
		DisplayName:    &in.DisplayName,
		FirstName:      &in.FirstName,
		LastName:       &in.LastName,
		PhoneNumber:    &in.PhoneNumber,
		Email:          &in.Email,
		ProfilePicture: &in.ProfilePicture,
	}
}

// --- Output DTOs ---

// LoginOutput returns the access token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	Account     *entity.Account
}

// AccountUsecase defines the account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	VerifyEmail(ctx context.Context, token string) (*entity.Account, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// RequestPasswordReset succeeds whether or not the email is registered.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	// Authenticate resolves an access token to its account.
	Authenticate(ctx context.Context, accessToken string) (*entity.Account, error)

	GetProfile(ctx context.Context, actor Actor) (*entity.Account, error)
	UpdateProfile(ctx context.Context, actor Actor, patch *ProfilePatch) (*entity.Account, error)
	ReplaceProfile(ctx context.Context, actor Actor, input *ProfileInput) (*entity.Account, error)
	ChangePassword(ctx context.Context, actor Actor, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, actor Actor) error
}
