package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"adjaoko/app/domains"
)

// Cache keys. The adja_oko_ prefix is the legacy on-device naming and is
// kept for migration-free upgrades.
const (
	PricesKey   = "adja_oko_prices"
	ListingsKey = "adja_oko_listings"
	ProfileKey  = "adja_oko_profile"
	LastSyncKey = "adja_oko_last_sync"
)

// Cache is the typed wrapper over the key-value store for the four records
// the app persists: price list, listing list, profile, last-sync stamp.
//
// Every operation absorbs storage and serialization faults: writes no-op
// and reads return the zero value, with the fault logged. Callers must
// treat an empty result as "nothing cached", never as an error.
type Cache struct {
	store  Store
	logger *zap.Logger
}

// NewCache creates a cache over the given store.
func NewCache(store Store, logger *zap.Logger) *Cache {
	return &Cache{store: store, logger: logger}
}

func (c *Cache) save(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to serialize cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, string(data)); err != nil {
		c.logger.Warn("failed to save cache entry", zap.String("key", key), zap.Error(err))
	}
}

// load returns true only when key was present and decoded cleanly.
func (c *Cache) load(ctx context.Context, key string, out interface{}) bool {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("failed to read cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		c.logger.Warn("failed to decode cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SavePrices persists the price list.
func (c *Cache) SavePrices(ctx context.Context, prices []domains.PriceSnapshot) {
	c.save(ctx, PricesKey, prices)
}

// Prices returns the cached price list, or nil when nothing is cached.
func (c *Cache) Prices(ctx context.Context) []domains.PriceSnapshot {
	var prices []domains.PriceSnapshot
	if !c.load(ctx, PricesKey, &prices) {
		return nil
	}
	return prices
}

// AddListing prepends listing to the cached listing list (newest first).
// Read-modify-write; single writer assumed.
func (c *Cache) AddListing(ctx context.Context, listing domains.Listing) {
	existing := c.Listings(ctx)
	updated := append([]domains.Listing{listing}, existing...)
	c.save(ctx, ListingsKey, updated)
}

// Listings returns the cached listing list, or nil when nothing is cached.
func (c *Cache) Listings(ctx context.Context) []domains.Listing {
	var listings []domains.Listing
	if !c.load(ctx, ListingsKey, &listings) {
		return nil
	}
	return listings
}

// SaveProfile persists the user profile.
func (c *Cache) SaveProfile(ctx context.Context, profile domains.UserProfile) {
	c.save(ctx, ProfileKey, profile)
}

// Profile returns the cached profile, or nil when nothing is cached.
func (c *Cache) Profile(ctx context.Context) *domains.UserProfile {
	var profile domains.UserProfile
	if !c.load(ctx, ProfileKey, &profile) {
		return nil
	}
	return &profile
}

// SetLastSync records the last successful sync timestamp, stored raw.
func (c *Cache) SetLastSync(ctx context.Context, ts string) {
	if err := c.store.Set(ctx, LastSyncKey, ts); err != nil {
		c.logger.Warn("failed to save last sync", zap.Error(err))
	}
}

// LastSync returns the last sync timestamp, or "" when never synced.
func (c *Cache) LastSync(ctx context.Context) string {
	ts, ok, err := c.store.Get(ctx, LastSyncKey)
	if err != nil {
		c.logger.Warn("failed to read last sync", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return ts
}

// ClearAll removes all cached records. Used by test and reset flows.
func (c *Cache) ClearAll(ctx context.Context) {
	keys := []string{PricesKey, ListingsKey, ProfileKey, LastSyncKey}
	if err := c.store.MultiRemove(ctx, keys); err != nil {
		c.logger.Warn("failed to clear cache", zap.Error(err))
	}
}
