package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database. PasswordHash is never
// serialized and is only populated by writes, read queries skip the column.
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                      // Primary key
	Username     string    `json:"username" db:"username"`          // Unique username
	Email        string    `json:"email" db:"email"`                // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`            // bcrypt digest
	Firstname    string    `json:"firstname" db:"firstname"`        // Optional, default empty
	Lastname     string    `json:"lastname" db:"lastname"`          // Optional, default empty
	Status       string    `json:"status" db:"status"`              // ACTIVE by default
	ProfileImage *string   `json:"profileImage" db:"profile_image"` // Relative image path or null
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}

// UserUpdate carries the optional fields of a partial user update.
// Nil means "leave unchanged". PasswordHash must already be hashed.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Firstname    *string
	Lastname     *string
	Status       *string
}
