package shared

import "github.com/google/uuid"

type Role int

const (
	RoleUnknown Role = iota
	RoleRenter
	RoleOrganizer
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleRenter:
		return "renter"
	case RoleOrganizer:
		return "organizer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

func ParseRole(s string) Role {
	switch s {
	case "renter":
		return RoleRenter
	case "organizer":
		return RoleOrganizer
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Actor is the authenticated caller, as asserted by the identity provider.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) AtLeast(r Role) bool {
	return a.Role >= r
}
