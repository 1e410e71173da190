package api

import (
	"context"

	"github.com/neexbeast/voyage-api/internal/resource"
)

// Resources looks up resource endpoints by name.
type Resources interface {
	Lookup(name string) (resource.Resource, bool)
}

// CacheInvalidator drops cached resource data.
type CacheInvalidator interface {
	Delete(ctx context.Context, resource string) error
}

// Pinger is anything the health check can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}
