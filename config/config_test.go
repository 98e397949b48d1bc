package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/cup?sslmode=disable")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TIMEOUT_MINUTES", "")
	t.Setenv("CACHE_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 240*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, "tournament-cache.json", cfg.CacheFile)
	assert.False(t, cfg.SnapshotsEnabled())
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	_, err = Load()
	assert.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("JWT_SECRET_KEY", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("SERVER_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SERVER_PORT", "70000")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_SnapshotsEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SnapshotsEnabled(), "public base URL still missing")

	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com/")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.SnapshotsEnabled())
}
