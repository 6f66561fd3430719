package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Author domain
type Service interface {
	// Create validates the request as a whole and inserts the author
	// Business rules:
	// - Name is required and must not match an existing author exactly
	// - Phone number, when given, is exactly 10 digits
	// Errors: *shared.ValidationError listing every violation
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List retrieves paginated list of authors
	// Default limit: 20, max: 100
	List(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update applies the non-nil fields and re-validates the whole record
	// The author's own name does not count as a duplicate.
	// Errors: ErrAuthorNotFound, *shared.ValidationError
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes author
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
