package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is feedback left by an account; only its author may change it.
type Review struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOwnedBy reports whether the review was written by the given account.
func (r *Review) IsOwnedBy(accountID uuid.UUID) bool {
	return r.AccountID == accountID
}

// ValidRating reports whether rating is within the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
