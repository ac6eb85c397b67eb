package domain

import "strings"

// Role is the access scope of an authenticated account. It is derived at
// login time and never persisted.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleContractor Role = "CONTRACTOR"
)

// ParseRole converts a role name in any letter case into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	case RoleContractor:
		return RoleContractor, nil
	default:
		return "", ErrUnsupportedRole
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleContractor:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
