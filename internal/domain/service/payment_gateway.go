package service

import "context"

// PaymentVerification is the gateway's verdict on a transaction reference.
type PaymentVerification struct {
	Success   bool
	Reference string // Transaction reference reported by the gateway.
	OrderRef  string // Booking identifier carried in the transaction metadata.
	Amount    int64  // Paid amount in currency minor units.
	Currency  string
	Status    string // Raw gateway status, e.g. "success" or "abandoned".
}

// PaymentGateway verifies transactions against an external payment provider.
type PaymentGateway interface {
	Verify(ctx context.Context, reference string) (*PaymentVerification, error)
}
