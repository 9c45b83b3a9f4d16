package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WasteType is the closed set of waste categories a pickup can carry.
type WasteType string

const (
	WasteOrganic    WasteType = "organic"
	WastePlastic    WasteType = "plastic"
	WasteMedical    WasteType = "medical"
	WasteIndustrial WasteType = "industrial"
)

// wasteAmounts holds the fixed price per category in currency minor units.
//
//nolint:gochecknoglobals
var wasteAmounts = map[WasteType]int64{
	WasteOrganic:    1000,
	WastePlastic:    2000,
	WasteMedical:    5000,
	WasteIndustrial: 10000,
}

// ParseWasteType accepts any letter case and the legacy "<type>_waste" spelling.
func ParseWasteType(raw string) (WasteType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.TrimSuffix(normalized, "_waste")
	wt := WasteType(normalized)
	if !wt.IsValid() {
		return "", false
	}

	return wt, true
}

// IsValid reports whether the category is known.
func (w WasteType) IsValid() bool {
	_, ok := wasteAmounts[w]

	return ok
}

// Amount returns the fixed price of the category, zero when unknown.
func (w WasteType) Amount() int64 {
	return wasteAmounts[w]
}

// String returns the string representation of the WasteType.
func (w WasteType) String() string {
	return string(w)
}

// OrderStatus is a booking's position in its linear delivery state machine.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderInTransit OrderStatus = "IN_TRANSIT"
	OrderCompleted OrderStatus = "COMPLETED"
)

// ParseOrderStatus accepts any letter case; "delivered" is an alias of COMPLETED.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(OrderPending):
		return OrderPending, true
	case string(OrderInTransit):
		return OrderInTransit, true
	case string(OrderCompleted), "DELIVERED":
		return OrderCompleted, true
	default:
		return "", false
	}
}

func (s OrderStatus) rank() int {
	switch s {
	case OrderPending:
		return 1
	case OrderInTransit:
		return 2
	case OrderCompleted:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether next is strictly ahead of s.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return s.rank() > 0 && next.rank() > s.rank()
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Booking is a waste-pickup order owned by exactly one account.
type Booking struct {
	ID               uuid.UUID
	AccountID        uuid.UUID // Owner of the booking.
	FirstName        string
	LastName         string
	Phone            string
	Address          string
	PickupDate       time.Time
	WasteType        WasteType
	Amount           int64 // Derived from WasteType, in currency minor units.
	OrderStatus      OrderStatus
	DeliveryStatus   bool
	PaymentStatus    bool
	PaymentReference string // Gateway reference recorded once payment is confirmed.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOwnedBy reports whether the booking belongs to the given account.
func (b *Booking) IsOwnedBy(accountID uuid.UUID) bool {
	return b.AccountID == accountID
}

// SetWasteType changes the category and recomputes the amount.
func (b *Booking) SetWasteType(wt WasteType) {
	b.WasteType = wt
	b.Amount = wt.Amount()
}

// Advance moves the order to next, setting the delivery flag on completion.
// It reports false when next is not strictly ahead of the current status.
func (b *Booking) Advance(next OrderStatus) bool {
	if !b.OrderStatus.CanAdvanceTo(next) {
		return false
	}
	b.OrderStatus = next
	if next == OrderCompleted {
		b.DeliveryStatus = true
	}

	return true
}

// MarkPaid records a confirmed payment and completes the order.
func (b *Booking) MarkPaid(reference string) {
	b.PaymentStatus = true
	b.PaymentReference = reference
	b.OrderStatus = OrderCompleted
}
