// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"zerowaste/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a use case.
type Actor struct {
	AccountID uuid.UUID
	IsStaff   bool
	// StaffOverride is set only by the administrative routes; a staff member
	// acting through the regular routes is treated like any other owner.
	StaffOverride bool
}

// ActorFromAccount builds an Actor for an authenticated account.
func ActorFromAccount(account *entity.Account) Actor {
	return Actor{AccountID: account.ID, IsStaff: account.IsStaff}
}

// AsStaff returns a copy of the actor allowed to act on other accounts' resources when it is staff.
func (a Actor) AsStaff() Actor {
	a.StaffOverride = a.IsStaff

	return a
}

// CanAccess reports whether the actor may read or change a resource owned by owner.
func (a Actor) CanAccess(owner uuid.UUID) bool {
	return a.AccountID == owner || (a.IsStaff && a.StaffOverride)
}
