package services

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"adjaoko/app/domains"
	"adjaoko/app/storage"
)

// PriceService drives the market price dashboard: a read-through cache
// over the built-in snapshot data, refreshed only by an explicit pull.
type PriceService struct {
	cache  *storage.Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewPriceService creates a price service over the cache.
func NewPriceService(cache *storage.Cache, logger *zap.Logger) *PriceService {
	return &PriceService{
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the dashboard prices and the last-sync stamp. Cached data
// wins; on a cache miss the seed data is returned and written back so a
// later load (or restart) sees the same snapshot.
func (s *PriceService) Load(ctx context.Context) ([]domains.PriceSnapshot, string) {
	cached := s.cache.Prices(ctx)
	if len(cached) > 0 {
		return cached, s.cache.LastSync(ctx)
	}

	now := s.now().UTC().Format(time.RFC3339)
	seeded := domains.SeedPrices(now)
	s.cache.SavePrices(ctx, seeded)
	s.cache.SetLastSync(ctx, now)
	return seeded, now
}

// Refresh simulates a market pull: the seed snapshots with a small random
// price movement, re-stamped and persisted.
func (s *PriceService) Refresh(ctx context.Context) ([]domains.PriceSnapshot, string) {
	now := s.now().UTC().Format(time.RFC3339)

	updated := domains.SeedPrices(now)
	for i := range updated {
		updated[i].CurrentPrice += (rand.Float64() - 0.5) * 50
	}

	s.cache.SavePrices(ctx, updated)
	s.cache.SetLastSync(ctx, now)
	return updated, now
}
