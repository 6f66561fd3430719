package post

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for Post domain
type Service interface {
	// Create validates title, content, summary and category together
	// Errors: *shared.ValidationError listing every violation
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// List supports an exact category filter and pagination
	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// Update applies the non-nil fields and re-validates the whole record
	// Errors: ErrPostNotFound, *shared.ValidationError
	Update(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
