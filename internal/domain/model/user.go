package model

import (
	"time"
)

const (
	RoleAdmin    = "Admin"
	RoleStaff    = "Staff"
	RoleCustomer = "Customer"
	RoleUser     = "User"
)

// SeedRoles is the fixed role set provisioned at startup.
var SeedRoles = []string{RoleAdmin, RoleStaff, RoleCustomer, RoleUser}

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"` // Not exposed
	Active         bool       `json:"active"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	Role           string     `json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Locked reports whether the account is currently locked out.
// A nil or past locked-until means unlocked.
func (u *User) Locked() bool {
	return u.LockedUntil != nil && u.LockedUntil.After(time.Now())
}
