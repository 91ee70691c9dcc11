package models

import "time"

// User represents an account entity used for authentication and authorization.
// It owns one Auth credential record and zero or more Tasks, and references
// a shared Role. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique email address used during authentication.
	Email string `json:"email"`

	// RoleID is the internal foreign key to the user's role.
	// It is never serialized into API responses.
	RoleID int64 `json:"-"`

	// Role is the role record associated with the user.
	// Populated on lookups that preload the role.
	Role *Role `json:"role,omitempty"`

	// Auth is the user's credential record (salt + password digest).
	// It is loaded only for password verification and is never serialized.
	Auth *Auth `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
