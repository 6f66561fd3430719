package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
)

// PostHandler handles HTTP requests for post domain
type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
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

// GetByID handles GET /posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
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

// List handles GET /posts?category=Fiction&limit=20&offset=0
func (h *PostHandler) List(c *gin.Context) {
	filter := post.PostFilter{
		Category: c.Query("category"),
		Limit:    post.DefaultLimit,
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}
	filter.Normalize()

	posts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.NewListResponse(posts, total, filter))
}

// Update handles PATCH /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
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

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *PostHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, post.ToErrorCode(post.ErrInvalidPostID), "Invalid UUID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	status := post.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Msg("post request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, post.ToErrorCode(err), err.Error())
}
