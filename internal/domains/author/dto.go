package author

import (
	"time"

	"github.com/google/uuid"
)

// Pagination bounds for List
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// UpdateAuthorRequest - PATCH /v1/authors/:id
// Nil fields are left untouched. An empty phone_number clears it.
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AuthorListResponse - Paginated list response
type AuthorListResponse struct {
	Data       []AuthorResponse `json:"data"`
	Pagination PaginationMeta   `json:"pagination"`
}

// PaginationMeta - Reusable pagination metadata
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// AuthorFilter - Query parameters for listing
type AuthorFilter struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// Normalize clamps limit and offset into their allowed range
func (f *AuthorFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToEntity converts CreateAuthorRequest to Author entity
func (req *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{Name: req.Name}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		phone := *req.PhoneNumber
		a.PhoneNumber = &phone
	}
	return a
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity
func (req *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber == "" {
			a.PhoneNumber = nil
		} else {
			phone := *req.PhoneNumber
			a.PhoneNumber = &phone
		}
	}
}

// NewListResponse builds the paginated list payload
func NewListResponse(authors []Author, total int64, filter AuthorFilter) *AuthorListResponse {
	data := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		data[i] = *a.ToResponse()
	}

	return &AuthorListResponse{
		Data: data,
		Pagination: PaginationMeta{
			CurrentPage: filter.Offset/filter.Limit + 1,
			PageSize:    filter.Limit,
			TotalItems:  total,
			TotalPages:  int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		},
	}
}
