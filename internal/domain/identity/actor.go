// Package identity defines the closed set of actor roles and the lookup
// contracts the core needs from the authentication collaborator. Session
// issuance itself lives outside this module.
package identity

import (
	"context"
	"fmt"
)

type Role string

const (
	RoleDealer     Role = "dealer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

var validRoles = map[Role]bool{
	RoleDealer:     true,
	RoleTechnician: true,
	RoleAdmin:      true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsDealer() bool {
	return a.Role == RoleDealer
}

func (a Actor) IsTechnician() bool {
	return a.Role == RoleTechnician
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Technician is the field-side identity a technician actor resolves to.
type Technician struct {
	ID       uint
	ActorID  uint
	DealerID uint
	Name     string
	Phone    string
	Active   bool
}

// TechnicianDirectory resolves technician identities. The visibility layer
// and the assignment manager both depend on it.
type TechnicianDirectory interface {
	GetByID(ctx context.Context, technicianID uint) (*Technician, error)
	GetByActorID(ctx context.Context, actorID uint) (*Technician, error)
}
