// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in, own a profile and own events.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // Login identifier, unique across all users.
	PasswordHash string    `json:"-"`          // bcrypt hash of the user's password.
	Roles        Roles     `json:"roles"`      // Roles granted to this account.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this user account was created.
}

// Principal is the already-authenticated acting user of a request.
type Principal struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Roles.Contains(RoleAdmin)
}
