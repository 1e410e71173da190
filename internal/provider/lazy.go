package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Factory constructs a Provider. It is called on first use, not at startup.
type Factory func(ctx context.Context) (Provider, error)

// ErrClosed is returned by Resolve after Close.
var ErrClosed = errors.New("provider handle closed")

// Lazy resolves a Provider through its Factory on first use and memoizes the
// result. A failed construction is not memoized; the next Resolve retries.
type Lazy struct {
	factory Factory

	mu     sync.Mutex
	p      Provider
	closed bool
}

// NewLazy returns a handle that defers calling factory until Resolve.
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

// Resolve returns the memoized Provider, constructing it if needed.
// Concurrent callers wait for a single in-flight construction.
func (l *Lazy) Resolve(ctx context.Context) (Provider, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if l.p != nil {
		return l.p, nil
	}

	p, err := l.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("constructing provider: %w", err)
	}
	if p == nil {
		return nil, errors.New("constructing provider: factory returned nil")
	}

	l.p = p
	return p, nil
}

// Resolved reports whether a Provider has been constructed.
func (l *Lazy) Resolved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p != nil
}

// Ping resolves the provider and pings it when it supports pinging.
func (l *Lazy) Ping(ctx context.Context) error {
	p, err := l.Resolve(ctx)
	if err != nil {
		return err
	}
	if pinger, ok := p.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close releases the constructed provider if it implements io.Closer.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	p := l.p
	l.p = nil

	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
