package pricing

import (
	"context"
	"errors"
	"time"

	"agencysite/models"
	"agencysite/utils"

	"github.com/go-redis/redis/v8"
)

const (
	catalogCacheKey = "pricing:catalog"
	catalogCacheTTL = 10 * time.Minute
)

// ErrCacheMiss is returned by a CatalogCache that holds no catalog.
var ErrCacheMiss = errors.New("pricing catalog not cached")

// CatalogCache keeps a read-through copy of the catalog.
type CatalogCache interface {
	Get(ctx context.Context) (*models.PricingCatalog, error)
	Set(ctx context.Context, catalog models.PricingCatalog) error
	Invalidate(ctx context.Context) error
}

type redisCatalogCache struct {
	client *redis.Client
}

// NewRedisCatalogCache stores the catalog as JSON under a single key.
func NewRedisCatalogCache(client *redis.Client) CatalogCache {
	return &redisCatalogCache{client: client}
}

func (c *redisCatalogCache) Get(ctx context.Context) (*models.PricingCatalog, error) {
	var catalog models.PricingCatalog
	found, err := utils.LoadCachedJSON(ctx, c.client, catalogCacheKey, &catalog)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCacheMiss
	}
	return &catalog, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, catalog models.PricingCatalog) error {
	return utils.SaveCachedJSON(ctx, c.client, catalogCacheKey, catalog, catalogCacheTTL)
}

func (c *redisCatalogCache) Invalidate(ctx context.Context) error {
	return utils.DeleteCached(ctx, c.client, catalogCacheKey)
}
