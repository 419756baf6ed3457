package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemDB represents an item record in the database
type ItemDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                // Primary key
	Name      string    `json:"name" db:"name"`            // Item name, trimmed
	Category  string    `json:"category" db:"category"`    // Category label
	Price     float64   `json:"price" db:"price"`          // Non-negative price
	Status    string    `json:"status" db:"status"`        // ACTIVE by default
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// ItemUpdate carries the optional fields of a partial item update.
// Nil means "leave unchanged".
type ItemUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Status   *string
}

// ItemReplace carries a full item replacement. CreatedAt is preserved
// when the caller supplies one, otherwise the record's creation time
// is reset to now.
type ItemReplace struct {
	Name      string
	Category  string
	Price     float64
	Status    string
	CreatedAt *time.Time
}
