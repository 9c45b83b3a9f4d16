package handler

import (
	"net/http"

	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/response"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultAdminPageSize = 20

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves staff-only account administration.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// CreateUserRequest opens an account with chosen activation and staff flags
type CreateUserRequest struct {
	RegisterRequest
	IsActive bool `json:"is_active"`
	IsStaff  bool `json:"is_staff"`
}

// UpdateUserRequest changes only the fields present in the body
type UpdateUserRequest struct {
	UpdateProfileRequest
	IsActive *bool `json:"is_active"`
	IsStaff  *bool `json:"is_staff"`
}

// ListUsers returns a page of accounts, oldest first
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	offset, limit := 0, defaultAdminPageSize
	err := echo.QueryParamsBinder(c).
		Int("offset", &offset).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "offset and limit must be integers")
	}

	if offset < 0 || limit < 1 || limit > usecase.MaxPageSize {
		return response.BadRequest(c, "INVALID_INPUT", "offset must be >= 0 and limit between 1 and 100")
	}

	accounts, err := h.adminUC.ListAccounts(c.Request().Context(), actor, offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, newAccountResponses(accounts), &response.PageInfo{
		Offset: offset,
		Limit:  limit,
		Count:  len(accounts),
	})
}

// GetUser returns any account
func (h *AdminHandler) GetUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	account, err := h.adminUC.GetAccount(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// CreateUser opens an account on behalf of staff
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.adminUC.CreateAccount(c.Request().Context(), actor, &usecase.AccountInput{
		RegisterInput: *req.toInput(),
		IsActive:      req.IsActive,
		IsStaff:       req.IsStaff,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account))
}

// UpdateUser applies a partial update to any account, including its flags
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.adminUC.UpdateAccount(c.Request().Context(), actor, id, &usecase.AccountPatch{
		ProfilePatch: *req.toPatch(),
		IsActive:     req.IsActive,
		IsStaff:      req.IsStaff,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// DeleteUser removes any account with its bookings and reviews
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteAccount(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Account deleted successfully")
}
