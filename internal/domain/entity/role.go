// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the authorization level of an account.
type Role string

const (
	// RoleCustomer is a regular account booking pickups.
	RoleCustomer Role = "customer"
	// RoleStaff is an operator allowed to manage any account or booking.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
