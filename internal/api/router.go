package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the optional parts of the router.
type RouterConfig struct {
	// AdminToken enables the admin routes when set and a cache is configured.
	AdminToken string
	// RateLimitPerMinute is the per-IP request budget. Zero disables limiting.
	RateLimitPerMinute int
	// Checks are pinged by the health endpoint, keyed by name.
	Checks map[string]Pinger
}

// NewRouter builds and returns the Chi router with all routes configured.
// Resource, health and metrics routes are public; admin routes require bearer auth.
func NewRouter(handlers *Handlers, cfg RouterConfig, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	r.Get("/api/health", HealthHandlerFunc(cfg.Checks, log))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/{resource}", handlers.GetResource)

	if cfg.AdminToken != "" && handlers.cache != nil {
		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(cfg.AdminToken))
			r.Delete("/api/admin/cache/{resource}", handlers.InvalidateCache)
		})
	}

	return r
}

// requestID returns the chi request ID, if any.
func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
