package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adjaoko/app/domains"
)

// brokenStore fails every operation, standing in for corrupted device
// storage.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage fault")
}
func (brokenStore) Set(context.Context, string, string) error  { return errors.New("storage fault") }
func (brokenStore) Remove(context.Context, string) error       { return errors.New("storage fault") }
func (brokenStore) MultiRemove(context.Context, []string) error { return errors.New("storage fault") }
func (brokenStore) Close() error                               { return nil }

func newTestCache() *Cache {
	return NewCache(NewMemoryStore(), zap.NewNop())
}

func TestCachePricesRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	prices := domains.SeedPrices(time.Now().UTC().Format(time.RFC3339))
	cache.SavePrices(ctx, prices)

	got := cache.Prices(ctx)
	require.Equal(t, prices, got)
}

func TestCacheListingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	first := domains.Listing{ID: "1", CropType: "maize", Location: "Lomé", DatePosted: "2025-01-01T00:00:00Z"}
	second := domains.Listing{ID: "2", CropType: "rice", Location: "Kara", DatePosted: "2025-02-01T00:00:00Z"}

	cache.AddListing(ctx, first)
	cache.AddListing(ctx, second)

	got := cache.Listings(ctx)
	require.Len(t, got, 2)
	// Newest insert first.
	assert.Equal(t, second, got[0])
	assert.Equal(t, first, got[1])
}

func TestCacheProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	profile := domains.UserProfile{
		ID:       "u1",
		Name:     "Afi Mensah",
		Phone:    "+22890123456",
		Location: "Kpalimé",
		UserType: domains.UserTypeFarmer,
	}
	cache.SaveProfile(ctx, profile)

	got := cache.Profile(ctx)
	require.NotNil(t, got)
	assert.Equal(t, profile, *got)
}

func TestCacheLastSyncRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	ts := "2025-03-01T10:00:00Z"
	cache.SetLastSync(ctx, ts)
	assert.Equal(t, ts, cache.LastSync(ctx))
}

func TestCacheMissesReturnDefaults(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	assert.Nil(t, cache.Prices(ctx))
	assert.Nil(t, cache.Listings(ctx))
	assert.Nil(t, cache.Profile(ctx))
	assert.Empty(t, cache.LastSync(ctx))
}

func TestCacheClearAll(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()

	cache.SavePrices(ctx, domains.SeedPrices("2025-01-01T00:00:00Z"))
	cache.AddListing(ctx, domains.Listing{ID: "1"})
	cache.SaveProfile(ctx, domains.UserProfile{ID: "u1", Name: "n"})
	cache.SetLastSync(ctx, "2025-01-01T00:00:00Z")

	cache.ClearAll(ctx)

	assert.Nil(t, cache.Prices(ctx))
	assert.Nil(t, cache.Listings(ctx))
	assert.Nil(t, cache.Profile(ctx))
	assert.Empty(t, cache.LastSync(ctx))
}

func TestCacheAbsorbsStorageFaults(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(brokenStore{}, zap.NewNop())

	// Writes no-op, reads return defaults; nothing panics or errors out.
	cache.SavePrices(ctx, domains.SeedPrices("2025-01-01T00:00:00Z"))
	cache.AddListing(ctx, domains.Listing{ID: "1"})
	cache.SaveProfile(ctx, domains.UserProfile{Name: "n"})
	cache.SetLastSync(ctx, "2025-01-01T00:00:00Z")
	cache.ClearAll(ctx)

	assert.Nil(t, cache.Prices(ctx))
	assert.Nil(t, cache.Listings(ctx))
	assert.Nil(t, cache.Profile(ctx))
	assert.Empty(t, cache.LastSync(ctx))
}

func TestCacheIgnoresCorruptEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := NewCache(store, zap.NewNop())

	require.NoError(t, store.Set(ctx, PricesKey, "{not json"))
	assert.Nil(t, cache.Prices(ctx))
}
