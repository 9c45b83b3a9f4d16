package service

import (
	"context"
)

// Booking event types
const (
	BookingEventCreated   = "booking.created"
	BookingEventAdvanced  = "booking.status_advanced"
	BookingEventPaid      = "booking.paid"
	BookingEventCancelled = "booking.cancelled"
)

// BookingEvent is published whenever a booking changes in a way other
// systems care about, such as dispatching a collector or mailing a receipt.
type BookingEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_id"`
	Type        string `json:"type"`
	BookingID   string `json:"booking_id"`
	AccountID   string `json:"account_id"`
	WasteType   string `json:"waste_type"`
	Amount      int64  `json:"amount"`
	OrderStatus string `json:"order_status"`
	Address     string `json:"address"`
	PickupDate  string `json:"pickup_date"`
	OccurredAt  string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking event for async processing
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
