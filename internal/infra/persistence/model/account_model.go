package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Email uniqueness is enforced by a unique index on lower(email).
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null"`
	DisplayName    string    `gorm:"type:varchar(50);not null"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	PhoneNumber    string    `gorm:"type:varchar(20)"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:false"`
	IsStaff        bool      `gorm:"not null;default:false"`
	ProfilePicture string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
