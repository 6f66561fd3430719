package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TOKEN_EXPIRY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 60*24, cfg.JWT.TokenExpiry)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TOKEN_EXPIRY", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 30, cfg.JWT.TokenExpiry)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestConfig_Validate_TokenExpiry(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "development"},
		JWT: JWTConfig{Secret: "s", TokenExpiry: 0},
	}

	assert.Error(t, cfg.Validate())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNECTIONS", "10")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
}

func TestLoadDatabaseConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "DB_PORT", value: "abc"},
		{key: "DB_MAX_CONNECTIONS", value: "0"},
		{key: "DB_MAX_CONNECTIONS", value: "many"},
		{key: "DB_RETRY_DELAY", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadDatabaseConfig()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
