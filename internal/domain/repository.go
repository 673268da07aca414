package domain

import (
	"context"
	"time"
)

// CatalogClient defines the interface for fetching the product catalog
// from the remote product-and-price service.
type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// CatalogCache defines the interface for caching catalog snapshots.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
