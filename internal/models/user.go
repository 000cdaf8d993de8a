package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a planner account that can log in to the admin API.
// Guests never have accounts; they are identified by guest records only.
type AdminUser struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the login identifier (unique).
	Email string `json:"email"`

	// DisplayName is shown in the admin UI.
	DisplayName string `json:"displayName"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewAdminUser builds an admin user with a fresh ID and timestamp.
func NewAdminUser(email, displayName, passwordHash string) *AdminUser {
	return &AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
