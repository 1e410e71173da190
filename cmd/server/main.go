package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/neexbeast/voyage-api/internal/api"
	"github.com/neexbeast/voyage-api/internal/cache"
	"github.com/neexbeast/voyage-api/internal/config"
	"github.com/neexbeast/voyage-api/internal/provider"
	"github.com/neexbeast/voyage-api/internal/resource"
	"github.com/neexbeast/voyage-api/internal/storage"
	"github.com/neexbeast/voyage-api/migrations"
)

const warmTimeout = 30 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "voyage-api",
		Short: "Catalog API for the travel site",
		Long: `voyage-api serves the travel site's catalog (categories, destinations) as JSON.

Every resource endpoint always answers 200: when the data provider cannot be
loaded or fails, a built-in fallback list is served instead.

Configuration is read from the environment and an optional .env file:
  PORT, DATA_PROVIDER (postgres|sqlite), DATABASE_URL, SQLITE_PATH,
  REDIS_URL, CACHE_TTL, ADMIN_TOKEN, RATE_LIMIT_PER_MINUTE,
  PROVIDER_TIMEOUT, LOG_LEVEL`,
		SilenceUsage: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

Routes:
  GET    /api/categories
  GET    /api/destinations
  GET    /api/health
  GET    /metrics
  DELETE /api/admin/cache/{resource}   (requires ADMIN_TOKEN and REDIS_URL)

The data provider is connected on first use, so the server starts even when
the database is down.`,
		RunE: runServe,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the catalog schema and seed data",
		RunE:  runMigrate,
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	checks := map[string]api.Pinger{}

	// Redis is optional: without it the provider is used directly.
	var catalogCache *cache.Cache
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, running without cache", "err", err)
		} else {
			defer func() { _ = redisClient.Close() }()
			catalogCache = cache.NewCache(redisClient, cfg.CacheTTL)
			checks["redis"] = catalogCache
		}
	}

	// Wire dependencies.
	lazy := provider.NewLazy(providerFactory(cfg, catalogCache, log))
	defer func() {
		if err := lazy.Close(); err != nil {
			log.Warn("closing provider", "err", err)
		}
	}()
	checks["provider"] = lazy

	opts := []resource.Option{resource.WithTimeout(cfg.ProviderTimeout)}
	registry := resource.NewRegistry(
		resource.Categories(lazy, log, opts...),
		resource.Destinations(lazy, log, opts...),
	)

	var invalidator api.CacheInvalidator
	if catalogCache != nil {
		invalidator = catalogCache
	}
	handlers := api.NewHandlers(registry, invalidator, log)
	router := api.NewRouter(handlers, api.RouterConfig{
		AdminToken:         cfg.AdminToken,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Checks:             checks,
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "provider", cfg.DataProvider, "cache", catalogCache != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	warmCtx, cancelWarm := context.WithTimeout(context.Background(), warmTimeout)
	defer cancelWarm()
	go func() {
		if err := resource.Warm(warmCtx, registry, log); err != nil {
			log.Warn("warm-up incomplete", "err", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// providerFactory returns the deferred constructor for the configured
// backend, wrapped in the read-through cache when one is available.
func providerFactory(cfg *config.Config, c *cache.Cache, log *slog.Logger) provider.Factory {
	return func(ctx context.Context) (provider.Provider, error) {
		var base provider.Provider

		switch cfg.DataProvider {
		case config.ProviderSQLite:
			repo, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
			if err != nil {
				return nil, err
			}
			base = repo
		default:
			pool, err := storage.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("connecting to database: %w", err)
			}
			base = storage.NewRepository(pool)
		}

		log.Info("data provider connected", "provider", cfg.DataProvider)

		if c != nil {
			return cache.NewProvider(base, c, log), nil
		}
		return base, nil
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch cfg.DataProvider {
	case config.ProviderSQLite:
		repo, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer func() { _ = repo.Close() }()

		if err := repo.Migrate(ctx, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	default:
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	log.Info("migrations applied", "provider", cfg.DataProvider)
	return nil
}
