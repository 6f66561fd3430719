package post

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// UpdatePostRequest - PATCH /v1/posts/:id
// Nil fields are left untouched
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category,omitempty"`
}

type PostResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   string     `json:"summary"`
	Category  string     `json:"category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type PostListResponse struct {
	Data       []PostResponse `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PostFilter - Query parameters for listing
type PostFilter struct {
	Category string `json:"category" form:"category"` // exact match, empty = all
	Limit    int    `json:"limit" form:"limit"`
	Offset   int    `json:"offset" form:"offset"`
}

func (f *PostFilter) Normalize() {
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

func (p Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (req *CreatePostRequest) ToEntity() *Post {
	return &Post{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
	}
}

func (req *UpdatePostRequest) ApplyToEntity(p *Post) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Summary != nil {
		p.Summary = *req.Summary
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
}

func NewListResponse(posts []Post, total int64, filter PostFilter) *PostListResponse {
	data := make([]PostResponse, len(posts))
	for i, p := range posts {
		data[i] = *p.ToResponse()
	}

	return &PostListResponse{
		Data: data,
		Pagination: PaginationMeta{
			CurrentPage: filter.Offset/filter.Limit + 1,
			PageSize:    filter.Limit,
			TotalItems:  total,
			TotalPages:  int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		},
	}
}
