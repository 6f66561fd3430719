package author

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared"
)

var (
	// Business Rule Errors
	ErrAuthorNotFound  = errors.New("author not found")
	ErrInvalidAuthorID = errors.New("author id is invalid")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case shared.IsValidationError(err):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidAuthorID):
		return "INVALID_AUTHOR_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case shared.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAuthorID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
