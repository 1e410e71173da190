package cache

import (
	"context"
	"log/slog"

	"github.com/neexbeast/voyage-api/internal/catalog"
	"github.com/neexbeast/voyage-api/internal/provider"
)

// Cache keys for the catalog resources.
const (
	KeyCategories   = "categories"
	KeyDestinations = "destinations"
)

// Provider is a read-through cache in front of another provider. Cache
// failures are logged and bypassed; provider failures are returned as-is and
// never cached.
type Provider struct {
	next  provider.Provider
	cache *Cache
	log   *slog.Logger
}

// NewProvider wraps next with c.
func NewProvider(next provider.Provider, c *Cache, log *slog.Logger) *Provider {
	return &Provider{next: next, cache: c, log: log}
}

// AllCategories implements provider.Provider.
func (p *Provider) AllCategories(ctx context.Context) ([]catalog.Category, error) {
	return readThrough(ctx, p, KeyCategories, p.next.AllCategories)
}

// AllDestinations implements provider.Provider.
func (p *Provider) AllDestinations(ctx context.Context) ([]catalog.Destination, error) {
	return readThrough(ctx, p, KeyDestinations, p.next.AllDestinations)
}

// Ping pings the wrapped provider when it supports pinging.
func (p *Provider) Ping(ctx context.Context) error {
	if pinger, ok := p.next.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close closes the wrapped provider when it supports closing.
func (p *Provider) Close() error {
	if c, ok := p.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func readThrough[T any](ctx context.Context, p *Provider, resource string, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := p.cache.Get(ctx, resource, &cached)
	if err != nil {
		p.log.Warn("cache get failed", "resource", resource, "err", err)
	}
	if hit {
		if cached == nil {
			cached = []T{}
		}
		return cached, nil
	}

	records, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}

	if err := p.cache.Set(ctx, resource, records); err != nil {
		p.log.Warn("cache set failed", "resource", resource, "err", err)
	}
	return records, nil
}
