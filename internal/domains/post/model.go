package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article
type Post struct {
	ID uuid.UUID `json:"id" db:"id"`

	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	Summary  string `json:"summary" db:"summary"`
	Category string `json:"category" db:"category"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}
