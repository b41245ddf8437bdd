package domain

import "time"

// Role is the closed set of actor kinds on the platform.
type Role string

const (
	RoleUser       Role = "user"
	RoleStartup    Role = "startup"
	RoleGovernment Role = "government"
	RoleCollector  Role = "collector"
)

// Roles lists every valid role.
var Roles = []Role{RoleUser, RoleStartup, RoleGovernment, RoleCollector}

// Valid reports whether r is a member of the role vocabulary.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User models a registered actor. PasswordHash is never serialized; the
// sanitized form attached to requests is the same struct with PasswordHash blank.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Points       int        `json:"points"`
	Status       UserStatus `json:"status"`
	Location     string     `json:"location,omitempty"`
	Contact      string     `json:"contact,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    time.Time  `json:"last_login,omitzero"`
}

// Sanitized returns a copy safe to attach to a request context and expose to
// downstream handlers: secret material is stripped, everything else preserved.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
