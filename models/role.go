package models

import "strings"

// Role is the closed set of identities the gateway recognises. Unknown role strings
// are normalised to RoleGuest by ParseRole and never reach business logic.
type Role int

const (
	RoleGuest Role = iota
	RoleCustomer
	RoleTherapist
	RoleAdmin
)

// ParseRole maps a backend role string onto a Role; anything unrecognised is a guest.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer
	case "therapist":
		return RoleTherapist
	case "admin":
		return RoleAdmin
	default:
		return RoleGuest
	}
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleTherapist:
		return "therapist"
	case RoleAdmin:
		return "admin"
	default:
		return "guest"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}
