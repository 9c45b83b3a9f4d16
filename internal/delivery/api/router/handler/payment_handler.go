package handler

import (
	"net/http"
	"strings"

	"zerowaste/internal/delivery/api/response"
	"zerowaste/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

// PaymentHandler reconciles bookings with gateway transactions.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

// Verify checks a transaction reference with the gateway and marks the booking paid on success.
// An unsuccessful transaction is still a 200 with success=false.
func (h *PaymentHandler) Verify(c echo.Context) error {
	reference := strings.TrimSpace(c.Param("reference"))
	if reference == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Transaction reference is required")
	}

	result, err := h.paymentUC.VerifyTransaction(c.Request().Context(), reference)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponse(result))
}
