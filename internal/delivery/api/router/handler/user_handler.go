package handler

import (
	"net/http"

	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/response"
	"zerowaste/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// UserHandler serves the caller's own profile.
type UserHandler struct {
	accountUC usecase.AccountUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{accountUC: params.AccountUC}
}

// UpdateProfileRequest changes only the fields present in the body
type UpdateProfileRequest struct {
	DisplayName    *string `json:"display_name" validate:"omitempty,min=3,max=50"`
	FirstName      *string `json:"first_name" validate:"omitempty,max=100"`
	LastName       *string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,e164"`
	Email          *string `json:"email" validate:"omitempty,email,max=255"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=512"`
}

func (req *UpdateProfileRequest) toPatch() *usecase.ProfilePatch {
	return &usecase.ProfilePatch{
		DisplayName:    req.DisplayName,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	}
}

// ReplaceProfileRequest replaces every editable profile field
type ReplaceProfileRequest struct {
	DisplayName    string `json:"display_name" validate:"required,min=3,max=50"`
	FirstName      string `json:"first_name" validate:"max=100"`
	LastName       string `json:"last_name" validate:"max=100"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,e164"`
	Email          string `json:"email" validate:"required,email,max=255"`
	ProfilePicture string `json:"profile_picture" validate:"max=512"`
}

// ChangePasswordRequest represents the request body for changing a known password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=100"`
}

// GetProfile returns the caller's account
func (h *UserHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	account, err := h.accountUC.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// UpdateProfile applies a partial profile update
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), actor, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// ReplaceProfile overwrites the editable profile fields
func (h *UserHandler) ReplaceProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req ReplaceProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.ReplaceProfile(c.Request().Context(), actor, &usecase.ProfileInput{
		DisplayName:    req.DisplayName,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// ChangePassword replaces the caller's password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), actor, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Password changed successfully")
}

// DeleteAccount removes the caller's account with its bookings and reviews
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Account deleted successfully")
}
