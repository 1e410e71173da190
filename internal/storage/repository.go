package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/voyage-api/internal/catalog"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Repository serves the catalog from PostgreSQL.
type Repository struct {
	q     Querier
	close func()
}

// NewRepository constructs a Repository that owns pool and closes it on Close.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool, close: pool.Close}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// AllCategories returns every category in display order.
func (r *Repository) AllCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.q.Query(ctx, selectCategories)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	results := []catalog.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return results, nil
}

// AllDestinations returns every destination in display order.
func (r *Repository) AllDestinations(ctx context.Context) ([]catalog.Destination, error) {
	rows, err := r.q.Query(ctx, selectDestinations)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	results := []catalog.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return results, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.q.Ping(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close releases the pool when the Repository owns one.
func (r *Repository) Close() error {
	if r.close != nil {
		r.close()
	}
	return nil
}
