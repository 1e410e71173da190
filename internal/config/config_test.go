package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/voyage-api/internal/config"
)

var allKeys = []string{
	"PORT", "DATA_PROVIDER", "DATABASE_URL", "SQLITE_PATH", "REDIS_URL", "CACHE_TTL",
	"ADMIN_TOKEN", "RATE_LIMIT_PER_MINUTE", "PROVIDER_TIMEOUT", "LOG_LEVEL",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func noDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/voyage")

	cfg, err := config.LoadFile(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.ProviderPostgres, cfg.DataProvider)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Zero(t, cfg.ProviderTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.AdminToken)
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadFile(noDotenv(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DatabaseURL")
}

func TestLoad_SQLiteNeedsNoDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_PROVIDER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/catalog.db")

	cfg, err := config.LoadFile(noDotenv(t))
	require.NoError(t, err)
	assert.Equal(t, config.ProviderSQLite, cfg.DataProvider)
	assert.Equal(t, "/tmp/catalog.db", cfg.SQLitePath)
}

func TestLoad_UnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_PROVIDER", "mongo")

	_, err := config.LoadFile(noDotenv(t))
	require.Error(t, err)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/voyage")
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("PROVIDER_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	cfg, err := config.LoadFile(noDotenv(t))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "s3cret", cfg.AdminToken)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"CACHE_TTL":             "soon",
		"PROVIDER_TIMEOUT":      "-1s",
		"RATE_LIMIT_PER_MINUTE": "0",
		"LOG_LEVEL":             "chatty",
		"PORT":                  "http",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DATABASE_URL", "postgres://localhost/voyage")
			t.Setenv(key, val)

			_, err := config.LoadFile(noDotenv(t))
			require.Error(t, err)
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range allKeys {
		// godotenv never overrides variables that are present, even empty ones.
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_PROVIDER=sqlite\nSQLITE_PATH=from-dotenv.db\nPORT=7000\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderSQLite, cfg.DataProvider)
	assert.Equal(t, "from-dotenv.db", cfg.SQLitePath)
	assert.Equal(t, "7000", cfg.Port)

	for _, k := range []string{"DATA_PROVIDER", "SQLITE_PATH", "PORT"} {
		require.NoError(t, os.Unsetenv(k))
	}
}
