package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/post"
)

// recordingCache keeps Set values in memory and records deletes
type recordingCache struct {
	values  map[string]interface{}
	ttls    map[string]time.Duration
	deleted []string
	setErr  error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{values: map[string]interface{}{}, ttls: map[string]time.Duration{}}
}

func (c *recordingCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (c *recordingCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *recordingCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *recordingCache) Ping(context.Context) error { return nil }

func TestPostgresRepository_Refresh_WritesThrough(t *testing.T) {
	t.Parallel()

	rc := newRecordingCache()
	repo := &postgresRepository{cache: rc}
	p := &post.Post{ID: uuid.New(), Title: "Secret Recipes"}
	key := postCacheKeyPrefix + p.ID.String()

	repo.refresh(context.Background(), p)

	assert.Same(t, p, rc.values[key])
	assert.Equal(t, cacheTTL, rc.ttls[key])
	assert.Empty(t, rc.deleted)
}

func TestPostgresRepository_Refresh_DropsKeyWhenSetFails(t *testing.T) {
	t.Parallel()

	rc := newRecordingCache()
	rc.setErr = errors.New("connection reset")
	repo := &postgresRepository{cache: rc}
	p := &post.Post{ID: uuid.New(), Title: "Secret Recipes"}

	// a stale copy from before the update
	key := postCacheKeyPrefix + p.ID.String()
	rc.values[key] = &post.Post{ID: p.ID, Title: "Top Recipes"}

	repo.refresh(context.Background(), p)

	assert.Equal(t, []string{key}, rc.deleted)
	assert.NotContains(t, rc.values, key)
}
