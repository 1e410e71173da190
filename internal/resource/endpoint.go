package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/neexbeast/voyage-api/internal/catalog"
	"github.com/neexbeast/voyage-api/internal/provider"
)

// Source tells where a Result's records came from.
type Source string

const (
	SourceProvider Source = "provider"
	SourceFallback Source = "fallback"
)

// Names of the built-in resources, as used in /api/{resource}.
const (
	NameCategories   = "categories"
	NameDestinations = "destinations"
)

// Result is the outcome of one Get. Records is always a non-nil slice of the
// resource's record type. Err is set when the fallback was served.
type Result struct {
	Records any
	Source  Source
	Err     error
}

// Resource is a named collection that always yields records.
type Resource interface {
	Name() string
	Get(ctx context.Context) Result
}

// Endpoint reads one resource from a provider and degrades to a static
// fallback set on any failure.
type Endpoint[T any] struct {
	name     string
	resolver provider.Resolver
	access   func(ctx context.Context, p provider.Provider) ([]T, error)
	validate func([]T) error
	fallback func() []T
	timeout  time.Duration
	log      *slog.Logger
}

// Option configures an Endpoint.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout bounds each provider call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewEndpoint builds an Endpoint. access reads the records from a resolved
// provider, validate rejects unusable records and fallback returns a fresh
// copy of the static set.
func NewEndpoint[T any](
	name string,
	resolver provider.Resolver,
	access func(ctx context.Context, p provider.Provider) ([]T, error),
	validate func([]T) error,
	fallback func() []T,
	log *slog.Logger,
	opts ...Option,
) *Endpoint[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Endpoint[T]{
		name:     name,
		resolver: resolver,
		access:   access,
		validate: validate,
		fallback: fallback,
		timeout:  o.timeout,
		log:      log,
	}
}

// Categories returns the endpoint serving /api/categories.
func Categories(resolver provider.Resolver, log *slog.Logger, opts ...Option) *Endpoint[catalog.Category] {
	return NewEndpoint(NameCategories, resolver,
		func(ctx context.Context, p provider.Provider) ([]catalog.Category, error) {
			return p.AllCategories(ctx)
		},
		catalog.ValidateCategories,
		catalog.FallbackCategories,
		log, opts...,
	)
}

// Destinations returns the endpoint serving /api/destinations.
func Destinations(resolver provider.Resolver, log *slog.Logger, opts ...Option) *Endpoint[catalog.Destination] {
	return NewEndpoint(NameDestinations, resolver,
		func(ctx context.Context, p provider.Provider) ([]catalog.Destination, error) {
			return p.AllDestinations(ctx)
		},
		catalog.ValidateDestinations,
		catalog.FallbackDestinations,
		log, opts...,
	)
}

// Name returns the resource name.
func (e *Endpoint[T]) Name() string { return e.name }

// Get implements Resource.
func (e *Endpoint[T]) Get(ctx context.Context) Result {
	records, src, err := e.Records(ctx)
	return Result{Records: records, Source: src, Err: err}
}

// Records returns the provider's records, or the fallback set together with
// the provider failure. It never returns a nil slice.
func (e *Endpoint[T]) Records(ctx context.Context) ([]T, Source, error) {
	start := time.Now()

	records, err := e.fetch(ctx)
	if err != nil {
		e.log.Error("provider unavailable, serving fallback",
			"resource", e.name,
			"stage", stageOf(err),
			"err", err,
		)
		observe(e.name, SourceFallback, start)
		return e.fallback(), SourceFallback, err
	}

	observe(e.name, SourceProvider, start)
	return records, SourceProvider, nil
}

// fetch runs the provider path. Every failure, including a panic in the
// provider, comes back as a provider.UnavailableError.
func (e *Endpoint[T]) fetch(ctx context.Context) (records []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = provider.Unavailable(e.name, provider.StagePanic, fmt.Errorf("%v", r))
		}
	}()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	p, err := e.resolver.Resolve(ctx)
	if err != nil {
		return nil, provider.Unavailable(e.name, provider.StageResolve, err)
	}

	records, err = e.access(ctx, p)
	if err != nil {
		return nil, provider.Unavailable(e.name, provider.StageAccess, err)
	}

	if err := e.validate(records); err != nil {
		return nil, provider.Unavailable(e.name, provider.StageValidate, err)
	}

	if records == nil {
		records = []T{}
	}
	return records, nil
}

func stageOf(err error) string {
	var ue *provider.UnavailableError
	if errors.As(err, &ue) {
		return ue.Stage
	}
	return ""
}
