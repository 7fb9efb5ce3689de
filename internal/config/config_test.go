package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HISTORY_ENABLED", "REDIS_URL", "WEEKLY_CACHE_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS", "METRICS_ENABLED", "DB_HOST"} {
		t.Setenv(key, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 10*time.Minute, cfg.WeeklyCacheTTL)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HISTORY_ENABLED", "true")
	t.Setenv("WEEKLY_CACHE_TTL", "1h")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, time.Hour, cfg.WeeklyCacheTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=snacc_test\n"), 0o600))

	cfg := Load(path)
	t.Cleanup(func() { os.Unsetenv("DB_NAME") })

	assert.Equal(t, "snacc_test", cfg.Database.Name)
}
