package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Create handles POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, found.ToResponse())
}

// List handles GET /v1/authors?limit=20&offset=0
func (h *AuthorHandler) List(c *gin.Context) {
	filter := author.AuthorFilter{
		Limit:  queryInt(c, "limit", author.DefaultLimit),
		Offset: queryInt(c, "offset", 0),
	}
	filter.Normalize()

	authors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author.NewListResponse(authors, total, filter))
}

// Update handles PATCH /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AuthorHandler) writeError(c *gin.Context, err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	status := author.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Msg("author request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, author.ToErrorCode(err), err.Error())
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, author.ToErrorCode(author.ErrInvalidAuthorID), "Invalid UUID format")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
