package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/voyage-api/internal/cache"
	"github.com/neexbeast/voyage-api/internal/catalog"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client, time.Hour), mr
}

func sampleCategories() []catalog.Category {
	return []catalog.Category{{ID: "1", Name: "Beach", Slug: "beach", Description: "Sun"}}
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "categories", sampleCategories()))

	var got []catalog.Category
	hit, err := c.Get(ctx, "categories", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, sampleCategories(), got)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var got []catalog.Category
	hit, err := c.Get(context.Background(), "nonexistent", &got)
	require.NoError(t, err)
	assert.False(t, hit, "cache miss should return false, nil")
	assert.Nil(t, got)
}

func TestCache_KeyIsNormalized(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, " Categories ", sampleCategories()))
	assert.True(t, mr.Exists("catalog:categories"))

	var got []catalog.Category
	hit, err := c.Get(ctx, "CATEGORIES", &got)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_EmptyListIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "destinations", []catalog.Destination{}))

	var got []catalog.Destination
	hit, err := c.Get(ctx, "destinations", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("catalog:categories", "{not json"))

	var got []catalog.Category
	hit, err := c.Get(context.Background(), "categories", &got)
	require.Error(t, err)
	assert.False(t, hit)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "categories", sampleCategories()))
	require.NoError(t, c.Delete(ctx, "categories"))

	var got []catalog.Category
	hit, err := c.Get(ctx, "categories", &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should be gone after delete")
}

func TestCache_Delete_NonExistent(t *testing.T) {
	c, _ := newTestCache(t)
	// Deleting a key that doesn't exist should not error.
	err := c.Delete(context.Background(), "ghost")
	require.NoError(t, err)
}

func TestCache_Set_NilData(t *testing.T) {
	c, _ := newTestCache(t)
	// Setting nil data should be a no-op, not an error.
	err := c.Set(context.Background(), "categories", nil)
	require.NoError(t, err)
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "categories", sampleCategories()))

	mr.FastForward(2 * time.Hour)

	var got []catalog.Category
	hit, err := c.Get(ctx, "categories", &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should be expired after TTL")
}

func TestNewCache_DefaultTTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewCache(client, 0)
	require.NoError(t, c.Set(context.Background(), "categories", sampleCategories()))
	assert.Equal(t, cache.DefaultTTL, mr.TTL("catalog:categories"))
}

func TestCache_Ping(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	require.Error(t, c.Ping(context.Background()))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}

func TestConnect_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

// ---- read-through Provider ----

type mockProvider struct {
	categoriesFn   func(ctx context.Context) ([]catalog.Category, error)
	destinationsFn func(ctx context.Context) ([]catalog.Destination, error)
}

func (m *mockProvider) AllCategories(ctx context.Context) ([]catalog.Category, error) {
	return m.categoriesFn(ctx)
}

func (m *mockProvider) AllDestinations(ctx context.Context) ([]catalog.Destination, error) {
	return m.destinationsFn(ctx)
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvider_MissLoadsAndStores(t *testing.T) {
	c, mr := newTestCache(t)
	calls := 0
	next := &mockProvider{
		categoriesFn: func(_ context.Context) ([]catalog.Category, error) {
			calls++
			return sampleCategories(), nil
		},
	}
	p := cache.NewProvider(next, c, discardLog())

	got, err := p.AllCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCategories(), got)
	assert.True(t, mr.Exists("catalog:categories"))

	got, err = p.AllCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCategories(), got)
	assert.Equal(t, 1, calls, "second read should be served from cache")
}

func TestProvider_ErrorIsNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	next := &mockProvider{
		destinationsFn: func(_ context.Context) ([]catalog.Destination, error) {
			return nil, errors.New("db down")
		},
	}
	p := cache.NewProvider(next, c, discardLog())

	_, err := p.AllDestinations(context.Background())
	require.Error(t, err)
	assert.False(t, mr.Exists("catalog:destinations"))
}

func TestProvider_EmptyResultCachedAsEmpty(t *testing.T) {
	c, _ := newTestCache(t)
	calls := 0
	next := &mockProvider{
		destinationsFn: func(_ context.Context) ([]catalog.Destination, error) {
			calls++
			return nil, nil
		},
	}
	p := cache.NewProvider(next, c, discardLog())

	for range 2 {
		got, err := p.AllDestinations(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
	assert.Equal(t, 1, calls)
}

func TestProvider_RedisDownFallsThrough(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	next := &mockProvider{
		categoriesFn: func(_ context.Context) ([]catalog.Category, error) { return sampleCategories(), nil },
	}
	p := cache.NewProvider(next, c, discardLog())

	got, err := p.AllCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCategories(), got)
}

func TestProvider_PingAndCloseWithoutSupport(t *testing.T) {
	c, _ := newTestCache(t)
	p := cache.NewProvider(&mockProvider{}, c, discardLog())
	require.NoError(t, p.Ping(context.Background()))
	require.NoError(t, p.Close())
}
