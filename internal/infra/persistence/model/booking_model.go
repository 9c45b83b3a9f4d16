package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. AccountID references accounts.id with cascade delete.
type BookingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstName        string    `gorm:"type:varchar(100)"`
	LastName         string    `gorm:"type:varchar(100)"`
	Phone            string    `gorm:"type:varchar(20)"`
	Address          string    `gorm:"type:text;not null"`
	PickupDate       time.Time `gorm:"type:date;not null"`
	WasteType        string    `gorm:"type:varchar(20);not null"`
	Amount           int64     `gorm:"not null"`
	OrderStatus      string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	DeliveryStatus   bool      `gorm:"not null;default:false"`
	PaymentStatus    bool      `gorm:"not null;default:false"`
	PaymentReference string    `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
