package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles. An empty role means an ordinary user.
const (
	RoleAdmin = "admin"
)

// User is an account keyed by email. Accounts are created through the upsert
// login path, so there is no credential stored here.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpsertUserRequest is the profile payload accepted by PUT /users/:email.
type UpsertUserRequest struct {
	Name string `json:"name" binding:"required"`
}
