package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Post data access operations
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns ErrPostNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// List returns a page of posts, newest first, plus the total count
	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// Update locks the row, applies mutate and writes the result back in one
	// transaction. An error from mutate aborts the update.
	Update(ctx context.Context, id uuid.UUID, mutate func(*Post) error) (*Post, error)

	// Delete returns ErrPostNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error
}
