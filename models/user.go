package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the relational store.
	UserID int64 `json:"id"`

	// Email is the unique, case-normalized user login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt and UpdatedAt are audit timestamps managed by the store.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the narrow, password-free view of a user that the auth
// middleware attaches to the request context and handlers serialize
// back to clients.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Identity strips the credential fields from the user record.
func (u User) Identity() Identity {
	return Identity{ID: u.UserID, Email: u.Email}
}

// UserUpdate describes a partial credential change. Nil fields are
// left untouched by the store.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
