package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared"
	"blog-backend/internal/shared/middleware"
)

// ============================================================================
// Stub service
// ============================================================================

type stubService struct {
	createFn  func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error)
	getFn     func(ctx context.Context, id uuid.UUID) (*author.Author, error)
	listFn    func(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error)
	updateFn  func(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	lastLimit int
}

func (s *stubService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.getFn(ctx, id)
}

func (s *stubService) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	s.lastLimit = filter.Limit
	return s.listFn(ctx, filter)
}

func (s *stubService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

// ============================================================================
// Test Helpers
// ============================================================================

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string             `json:"code"`
		Message string             `json:"message"`
		Details []shared.Violation `json:"details"`
	} `json:"error"`
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(svc)
	r := gin.New()
	r.POST("/authors", h.Create)
	r.GET("/authors", h.List)
	r.GET("/authors/:id", h.GetByID)
	r.PATCH("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// ============================================================================
// Tests
// ============================================================================

func TestAuthorHandler_Create(t *testing.T) {
	id := uuid.New()
	svc := &stubService{
		createFn: func(_ context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
			return &author.Author{ID: id, Name: req.Name, PhoneNumber: req.PhoneNumber, CreatedAt: time.Now()}, nil
		},
	}

	w, env := do(t, newRouter(svc), http.MethodPost, "/authors", `{"name":"Jane Doe","phone_number":"5551234567"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var got author.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestAuthorHandler_Create_ValidationFailed(t *testing.T) {
	svc := &stubService{
		createFn: func(context.Context, *author.CreateAuthorRequest) (*author.Author, error) {
			return nil, &shared.ValidationError{Violations: []shared.Violation{
				{Field: author.FieldName, Message: "Name must be unique."},
				{Field: author.FieldPhoneNumber, Message: "Phone number must be exactly ten digits."},
			}}
		},
	}

	w, env := do(t, newRouter(svc), http.MethodPost, "/authors", `{"name":"Jane Doe","phone_number":"123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Len(t, env.Error.Details, 2)
	assert.Equal(t, "Name must be unique.", env.Error.Details[0].Message)
}

func TestAuthorHandler_Create_BadJSON(t *testing.T) {
	w, env := do(t, newRouter(&stubService{}), http.MethodPost, "/authors", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestAuthorHandler_GetByID_InvalidUUID(t *testing.T) {
	w, env := do(t, newRouter(&stubService{}), http.MethodGet, "/authors/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_AUTHOR_ID", env.Error.Code)
}

func TestAuthorHandler_GetByID_NotFound(t *testing.T) {
	svc := &stubService{
		getFn: func(context.Context, uuid.UUID) (*author.Author, error) {
			return nil, author.ErrAuthorNotFound
		},
	}

	w, env := do(t, newRouter(svc), http.MethodGet, "/authors/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTHOR_NOT_FOUND", env.Error.Code)
}

func TestAuthorHandler_List_ClampsLimit(t *testing.T) {
	svc := &stubService{
		listFn: func(_ context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
			return []author.Author{{ID: uuid.New(), Name: "Jane Doe"}}, 1, nil
		},
	}

	w, env := do(t, newRouter(svc), http.MethodGet, "/authors?limit=1000", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, author.MaxLimit, svc.lastLimit)

	var got author.AuthorListResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got.Data, 1)
	assert.Equal(t, int64(1), got.Pagination.TotalItems)
	assert.Equal(t, 1, got.Pagination.TotalPages)
}

func TestAuthorHandler_Update_InternalErrorHidden(t *testing.T) {
	svc := &stubService{
		updateFn: func(context.Context, uuid.UUID, *author.UpdateAuthorRequest) (*author.Author, error) {
			return nil, errors.New("pq: connection refused")
		},
	}

	w, env := do(t, newRouter(svc), http.MethodPatch, "/authors/"+uuid.NewString(), `{"name":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, env.Error)
	assert.NotContains(t, env.Error.Message, "connection refused")
}

func TestAuthorHandler_InternalErrorLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	svc := &stubService{
		deleteFn: func(context.Context, uuid.UUID) error { return errors.New("pq: connection refused") },
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.DELETE("/authors/:id", NewAuthorHandler(svc).Delete)

	req := httptest.NewRequest(http.MethodDelete, "/authors/"+uuid.NewString(), nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "author request failed", entry["message"])
}

func TestAuthorHandler_Delete(t *testing.T) {
	svc := &stubService{
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}

	w, _ := do(t, newRouter(svc), http.MethodDelete, "/authors/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
