package resource

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Registry looks resources up by name.
type Registry struct {
	byName map[string]Resource
}

// NewRegistry indexes resources by Name. Later duplicates replace earlier ones.
func NewRegistry(resources ...Resource) *Registry {
	m := make(map[string]Resource, len(resources))
	for _, r := range resources {
		m[r.Name()] = r
	}
	return &Registry{byName: m}
}

// Lookup returns the resource registered under name.
func (r *Registry) Lookup(name string) (Resource, bool) {
	res, ok := r.byName[name]
	return res, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Warm reads every registered resource in parallel so the provider handle is
// resolved and any cache in front of it is primed. Provider failures are only
// logged; an error is returned only when ctx is cancelled first.
func Warm(ctx context.Context, reg *Registry, log *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, name := range reg.Names() {
		res := reg.byName[name]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("warm-up panicked", "resource", name, "recover", r)
					err = fmt.Errorf("warming %s panicked: %v", name, r)
				}
			}()
			result := res.Get(gCtx)
			if result.Err != nil {
				log.Warn("warm-up served fallback", "resource", name, "err", result.Err)
				return nil
			}
			log.Info("warm-up complete", "resource", name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("warming resources: %w", err)
	}
	return ctx.Err()
}
