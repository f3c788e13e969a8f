package model

import "time"

// Role grants access levels within the storefront.
type Role int

const (
	RoleBuyer Role = 0
	RoleAdmin Role = 1
)

// Admin reports whether the role grants cross-buyer order visibility and
// status mutation.
func (r Role) Admin() bool {
	return r == RoleAdmin
}

// User represents a registered customer of the storefront.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Address      string
	Role         Role
	CreatedAt    time.Time
}
