package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseWasteType(t *testing.T) {
	tests := []struct {
		raw    string
		want   WasteType
		wantOK bool
		amount int64
	}{
		{"organic", WasteOrganic, true, 1000},
		{"Plastic", WastePlastic, true, 2000},
		{"plastic_waste", WastePlastic, true, 2000},
		{" MEDICAL ", WasteMedical, true, 5000},
		{"industrial", WasteIndustrial, true, 10000},
		{"glass", "", false, 0},
		{"", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseWasteType(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.amount, got.Amount())
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("in_transit")
	assert.True(t, ok)
	assert.Equal(t, OrderInTransit, status)

	status, ok = ParseOrderStatus("delivered")
	assert.True(t, ok)
	assert.Equal(t, OrderCompleted, status)

	_, ok = ParseOrderStatus("cancelled")
	assert.False(t, ok)
}

func TestBooking_Advance(t *testing.T) {
	tests := []struct {
		name         string
		from         OrderStatus
		to           OrderStatus
		wantOK       bool
		wantDelivery bool
	}{
		{"pending to in transit", OrderPending, OrderInTransit, true, false},
		{"pending to completed", OrderPending, OrderCompleted, true, true},
		{"in transit to completed", OrderInTransit, OrderCompleted, true, true},
		{"completed to pending", OrderCompleted, OrderPending, false, false},
		{"in transit to in transit", OrderInTransit, OrderInTransit, false, false},
		{"unknown target", OrderPending, OrderStatus("LOST"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{OrderStatus: tt.from}
			ok := b.Advance(tt.to)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDelivery, b.DeliveryStatus)
			if !ok {
				assert.Equal(t, tt.from, b.OrderStatus)
			}
		})
	}
}

func TestBooking_MarkPaidAndOwnership(t *testing.T) {
	owner := uuid.New()
	b := &Booking{AccountID: owner, OrderStatus: OrderPending}
	b.SetWasteType(WasteMedical)
	b.MarkPaid("ref-123")

	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(uuid.New()))
	assert.Equal(t, int64(5000), b.Amount)
	assert.True(t, b.PaymentStatus)
	assert.Equal(t, OrderCompleted, b.OrderStatus)
	assert.Equal(t, "ref-123", b.PaymentReference)
}

func TestAccount_Role(t *testing.T) {
	assert.Equal(t, RoleStaff, (&Account{IsStaff: true}).Role())
	assert.Equal(t, RoleCustomer, (&Account{}).Role())
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
