package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Data provider backends.
const (
	ProviderPostgres = "postgres"
	ProviderSQLite   = "sqlite"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port               string `validate:"required,numeric"`
	DataProvider       string `validate:"oneof=postgres sqlite"`
	DatabaseURL        string `validate:"required_if=DataProvider postgres"`
	SQLitePath         string `validate:"required_if=DataProvider sqlite"`
	RedisURL           string
	CacheTTL           time.Duration `validate:"gte=0"`
	AdminToken         string
	RateLimitPerMinute int           `validate:"gt=0"`
	ProviderTimeout    time.Duration `validate:"gte=0"`
	LogLevel           slog.Level
}

var configValidate = validator.New()

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is ignored.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataProvider: strings.ToLower(getEnv("DATA_PROVIDER", ProviderPostgres)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getEnv("SQLITE_PATH", "voyage.db"),
		RedisURL:     os.Getenv("REDIS_URL"),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
	}

	var err error
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = durationEnv("PROVIDER_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 60); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	if err := configValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}
