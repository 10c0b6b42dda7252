package enum

import (
	"database/sql/driver"
	"fmt"
)

// Role represents a user's role within a restaurant. Roles are ordered:
// SUPER_ADMIN > ADMIN > CASHIER.
type Role string

const (
	RoleCashier    Role = "CASHIER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCashier, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) rank() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleCashier:
		return 1
	}
	return 0
}

// AtLeast reports whether the role has privileges equal to or above min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// ParseRole parses a role string, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	}
	return nil
}
