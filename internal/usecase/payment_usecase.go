package usecase

import (
	"context"

	"zerowaste/internal/domain/entity"
)

// PaymentResult is the outcome of reconciling one transaction reference.
type PaymentResult struct {
	Success   bool
	Reference string
	Status    string          // Raw gateway status.
	Booking   *entity.Booking // Set only when the payment was applied.
}

// PaymentUsecase reconciles bookings with the payment gateway.
type PaymentUsecase interface {
	// VerifyTransaction mutates nothing unless the gateway reports success.
	VerifyTransaction(ctx context.Context, reference string) (*PaymentResult, error)
}
