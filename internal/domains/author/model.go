package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents the core Author entity
type Author struct {
	// Generated by storage on insert
	ID uuid.UUID `json:"id" db:"id"`

	Name        string  `json:"name" db:"name"`                 // Required, unique (case-sensitive)
	PhoneNumber *string `json:"phone_number" db:"phone_number"` // Optional, exactly 10 digits

	// Audit timestamps, managed by storage.
	// UpdatedAt stays nil until the first update.
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// HasPhoneNumber checks if author has a phone number on record
func (a *Author) HasPhoneNumber() bool {
	return a.PhoneNumber != nil && *a.PhoneNumber != ""
}
