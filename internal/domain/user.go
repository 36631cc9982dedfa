package domain

import (
	"time"

	"github.com/google/uuid"
)

// User role constants.
const (
	RoleAdmin   = "Admin"
	RoleParent  = "Parent"
	RoleTeacher = "Teacher"
	RoleKid     = "Kid"
)

// AllRoles returns every valid user role.
func AllRoles() []string {
	return []string{RoleAdmin, RoleParent, RoleTeacher, RoleKid}
}

// RegistrationRoles returns the roles a user may self-assign at signup.
// Admin accounts are provisioned out of band (seed CLI), never via the
// public registration endpoint.
func RegistrationRoles() []string {
	return []string{RoleParent, RoleTeacher, RoleKid}
}

// User holds a credential record from the users table.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection returned to clients. The password hash is
// never part of any response body.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
