package provider

import (
	"context"
	"errors"

	"github.com/neexbeast/voyage-api/internal/catalog"
)

// Provider supplies authoritative catalog data. Implementations may fail or
// panic; callers in the resource layer absorb both.
type Provider interface {
	AllCategories(ctx context.Context) ([]catalog.Category, error)
	AllDestinations(ctx context.Context) ([]catalog.Destination, error)
}

// Resolver hands out a Provider, possibly constructing it on first use.
type Resolver interface {
	Resolve(ctx context.Context) (Provider, error)
}

// Failure stages recorded on UnavailableError.
const (
	StageResolve  = "resolve"
	StageAccess   = "access"
	StageValidate = "validate"
	StagePanic    = "panic"
)

// ErrUnavailable is the single failure class for provider access.
var ErrUnavailable = errors.New("provider unavailable")

// UnavailableError describes why a resource could not be read from the provider.
type UnavailableError struct {
	Resource string
	Stage    string
	Err      error
}

func (e *UnavailableError) Error() string {
	return ErrUnavailable.Error() + ": " + e.Resource + " " + e.Stage + ": " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is reports ErrUnavailable for every UnavailableError.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Unavailable wraps err as an UnavailableError.
func Unavailable(resource, stage string, err error) error {
	return &UnavailableError{Resource: resource, Stage: stage, Err: err}
}
