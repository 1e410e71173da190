package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	resources Resources
	cache     CacheInvalidator
	log       *slog.Logger
}

// NewHandlers constructs Handlers. cache may be nil when no cache is configured.
func NewHandlers(resources Resources, cache CacheInvalidator, log *slog.Logger) *Handlers {
	return &Handlers{
		resources: resources,
		cache:     cache,
		log:       log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GetResource handles GET /api/{resource}.
// Always 200 with a JSON array; provider failures are served from the fallback set.
func (h *Handlers) GetResource(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")

	res, ok := h.resources.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "resource not found"})
		return
	}

	result := res.Get(r.Context())
	if result.Err != nil {
		h.log.Warn("served fallback", "resource", name, "request_id", requestID(r))
	}

	writeJSON(w, http.StatusOK, result.Records)
}

// InvalidateCache handles DELETE /api/admin/cache/{resource}.
func (h *Handlers) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")

	if _, ok := h.resources.Lookup(name); !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "resource not found"})
		return
	}

	if err := h.cache.Delete(r.Context(), name); err != nil {
		h.log.Error("cache delete failed", "resource", name, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to invalidate cache"})
		return
	}

	h.log.Info("cache invalidated", "resource", name)
	w.WriteHeader(http.StatusNoContent)
}

// HealthHandlerFunc returns an http.HandlerFunc that pings every named check.
// Returns 200 if all are ok, 503 otherwise.
func HealthHandlerFunc(checks map[string]Pinger, log *slog.Logger) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]string{"status": "ok"}

		for _, name := range names {
			body[name] = "ok"
			if err := checks[name].Ping(ctx); err != nil {
				log.Error("health check failed", "check", name, "err", err)
				body[name] = "error"
				status = http.StatusServiceUnavailable
			}
		}

		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		writeJSON(w, status, body)
	}
}
