package post

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidPostID = errors.New("post id is invalid")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case shared.IsValidationError(err):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, ErrInvalidPostID):
		return "INVALID_POST_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case shared.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidPostID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
