package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, 10, cfg.Discovery.DefaultLimit)
	assert.Equal(t, 10.0, cfg.Discovery.RadiusKm)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Assistant.MaxRetries)
	assert.Equal(t, time.Second, cfg.Assistant.InitialDelay)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/petster?sslmode=disable")
	t.Setenv("VIEWCOUNT_CACHE", "memory")
	t.Setenv("VIEWCOUNT_CACHE_TTL", "30s")
	t.Setenv("GEOFENCE_RADIUS_KM", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 25.0, cfg.Discovery.RadiusKm)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "firestore")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestLoad_AssistantRetriesBounded(t *testing.T) {
	t.Setenv("ASSISTANT_MAX_RETRIES", "40")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASSISTANT_MAX_RETRIES")

	t.Setenv("ASSISTANT_MAX_RETRIES", "10")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Assistant.MaxRetries)
}
