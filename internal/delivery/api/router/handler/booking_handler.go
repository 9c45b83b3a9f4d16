package handler

import (
	"net/http"
	"time"

	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/response"
	"zerowaste/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
}

// BookingHandler serves the caller's pickup bookings.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{bookingUC: params.BookingUC}
}

// BookingRequest represents the full set of customer-chosen booking fields
type BookingRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,e164"`
	Address    string `json:"address" validate:"required,max=255"`
	PickupDate string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
	WasteType  string `json:"waste_type" validate:"required"`
}

// UpdateBookingRequest changes only the fields present in the body
type UpdateBookingRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,e164"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	PickupDate *string `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
	WasteType  *string `json:"waste_type"`
}

// StatusRequest names the order status to advance to
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (req *BookingRequest) toInput() (*usecase.BookingInput, error) {
	pickupDate, err := time.Parse(time.DateOnly, req.PickupDate)
	if err != nil {
		return nil, err
	}

	return &usecase.BookingInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		PickupDate: pickupDate,
		WasteType:  req.WasteType,
	}, nil
}

func (req *UpdateBookingRequest) toPatch() (*usecase.BookingPatch, error) {
	patch := &usecase.BookingPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		WasteType: req.WasteType,
	}
	if req.PickupDate != nil {
		pickupDate, err := time.Parse(time.DateOnly, *req.PickupDate)
		if err != nil {
			return nil, err
		}
		patch.PickupDate = &pickupDate
	}

	return patch, nil
}

// bookingID parses the :id path parameter.
func bookingID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// Create books a pickup for the caller
func (h *BookingHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "pickup_date must be formatted as YYYY-MM-DD")
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBookingResponse(booking))
}

// List returns the caller's bookings, newest first
func (h *BookingHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	bookings, err := h.bookingUC.ListByOwner(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponses(bookings))
}

// Get returns one of the caller's bookings
func (h *BookingHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking))
}

// Update applies a partial booking update
func (h *BookingHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	patch, err := req.toPatch()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "pickup_date must be formatted as YYYY-MM-DD")
	}

	booking, err := h.bookingUC.Update(c.Request().Context(), actor, id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking))
}

// Replace overwrites every customer-chosen booking field
func (h *BookingHandler) Replace(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "pickup_date must be formatted as YYYY-MM-DD")
	}

	booking, err := h.bookingUC.Replace(c.Request().Context(), actor, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking))
}

// Delete cancels one of the caller's bookings
func (h *BookingHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	if err := h.bookingUC.Delete(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Booking deleted successfully")
}

// AdvanceStatus moves a booking's order status forward
func (h *BookingHandler) AdvanceStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.advance(c, actor)
}

// AdvanceStatusAsStaff is the administrative variant of AdvanceStatus
func (h *BookingHandler) AdvanceStatusAsStaff(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.advance(c, actor.AsStaff())
}

func (h *BookingHandler) advance(c echo.Context, actor usecase.Actor) error {
	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.AdvanceDeliveryStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookingResponse(booking))
}

// PickupQR returns the PNG QR code a collector scans on pickup
func (h *BookingHandler) PickupQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.pickupQR(c, actor)
}

// PickupQRAsStaff renders the pickup QR code of any booking for staff
func (h *BookingHandler) PickupQRAsStaff(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authenticated account not found in context")
	}

	return h.pickupQR(c, actor.AsStaff())
}

func (h *BookingHandler) pickupQR(c echo.Context, actor usecase.Actor) error {
	id, ok := bookingID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	png, err := h.bookingUC.PickupQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
