package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cartscope/backend/internal/domain"
)

const snapshotCacheKey = "catalog:snapshot"

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService hands the engine a stable catalog snapshot. The remote
// feed is fetched through the client and held in a TTL cache so that
// repeated searches within a window score against the same snapshot.
type CatalogService struct {
	cache              domain.CatalogCache
	client             domain.CatalogClient
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(cache domain.CatalogCache, client domain.CatalogClient, config CatalogServiceConfig) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &CatalogService{
		cache:              cache,
		client:             client,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Snapshot returns the current catalog.
// Flow: check cache -> fetch from catalog service -> cache -> return
func (s *CatalogService) Snapshot(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, snapshotCacheKey)
		if err == nil {
			if s.enableDebugLogging {
				log.Printf("[CATALOG] snapshot served from cache (%d products)", len(cached))
			}
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) && s.enableDebugLogging {
			log.Printf("[CATALOG] cache error (continuing to fetch): %v", err)
		}
	}

	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshotCacheKey, products, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[CATALOG] failed to cache snapshot: %v", err)
		}
	}

	return products, nil
}

// Invalidate drops the cached snapshot so the next Snapshot call
// refetches from the catalog service.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, snapshotCacheKey)
}

// ProductNames extracts the product names from a snapshot, the
// vocabulary the spelling suggester runs against.
func ProductNames(catalog []domain.Product) []string {
	names := make([]string, 0, len(catalog))
	for _, product := range catalog {
		names = append(names, product.Name)
	}
	return names
}
