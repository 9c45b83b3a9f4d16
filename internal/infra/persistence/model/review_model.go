package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. AccountID references accounts.id with cascade delete.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewerName string    `gorm:"type:varchar(100);not null"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
