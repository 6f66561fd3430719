//go:build integration

// Package testinfra starts throwaway PostgreSQL and Redis containers for
// repository integration tests. Run with: go test -tags integration ./...
package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
)

const (
	postgresImage = "postgres:16-alpine"
	redisImage    = "redis:7-alpine"
)

// StartPostgres runs a migrated PostgreSQL instance for the duration of t.
// opts adjust the pool config before connecting.
func StartPostgres(t *testing.T, opts ...func(*database.DBConfig)) *database.PostgresDB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("blog_test"),
		tcpostgres.WithUsername("blog"),
		tcpostgres.WithPassword("secret"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &database.DBConfig{
		Host:              host,
		Port:              port.Int(),
		Username:          "blog",
		Password:          "secret",
		DBName:            "blog_test",
		SSLMode:           "disable",
		MaxConns:          5,
		MinConns:          1,
		MaxConnLifetime:   5 * time.Minute,
		MaxConnIdleTime:   time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        3,
		RetryDelay:        500 * time.Millisecond,
		ConnectTimeout:    5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	db := database.NewPostgresDB(cfg)
	require.NoError(t, db.Connect(ctx))
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	return db
}

// StartRedis runs a Redis instance for the duration of t
func StartRedis(t *testing.T) *cache.RedisCache {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, redisImage)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rc := cache.NewRedisCache(endpoint, "", 0)
	require.NoError(t, rc.Connect(ctx))
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}
