package domain

import "fmt"

// Role determines which operations a session may perform. The set is closed:
// every user carries exactly one of these three roles.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBiomedical    Role = "biomedical"
	RoleSterilisation Role = "sterilisation"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleAdmin, RoleBiomedical, RoleSterilisation}

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBiomedical, RoleSterilisation:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
