package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations
type Repository interface {
	NameChecker

	// Create inserts a new author
	// Returns: created author with ID and created_at set by storage
	// Errors: duplicate-name ValidationError on unique violation
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves author by UUID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List retrieves a page of authors, newest first
	// Returns: authors slice + total count for pagination
	List(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update locks the row, lets mutate change and validate it, then writes it
	// back in the same transaction. names runs its lookups on that
	// transaction, so mutate needs no second connection.
	// An error from mutate aborts the update.
	// Errors: ErrAuthorNotFound, duplicate-name ValidationError
	Update(ctx context.Context, id uuid.UUID, mutate func(a *Author, names NameChecker) error) (*Author, error)

	// Delete removes author by ID
	// Returns: ErrAuthorNotFound if not exists
	Delete(ctx context.Context, id uuid.UUID) error
}
