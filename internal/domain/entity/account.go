// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is the identity record of a person using the service.
// Bookings and reviews reference it by ID and are removed with it.
type Account struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email          string    // Login identifier, stored lower-cased.
	DisplayName    string    // Public name, 3 to 50 characters.
	FirstName      string
	LastName       string
	PhoneNumber    string // E.164 formatted phone number.
	PasswordHash   string // bcrypt hash, never serialized.
	IsActive       bool   // Set once the email address has been verified.
	IsStaff        bool   // Grants access to administrative operations.
	ProfilePicture string // Optional reference to an uploaded picture.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role returns the authorization role derived from the staff flag.
func (a *Account) Role() Role {
	if a.IsStaff {
		return RoleStaff
	}

	return RoleCustomer
}

// NormalizeEmail returns the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
