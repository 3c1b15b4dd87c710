package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjstudio/career-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Minute, cfg.AutoSaveInterval)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("AUTOSAVE_INTERVAL", "5m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9000", cfg.ListenAddr())
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.AutoSaveInterval)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "-1")

	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTOSAVE_INTERVAL", "100ms")

	_, err = config.Load()
	require.Error(t, err)
}
