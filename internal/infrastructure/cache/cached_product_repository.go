package cache

import (
	"context"
	"time"

	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CachedProductRepository wraps a ProductRepository with a read-through
// cache on FindByID. Product detail pages dominate storefront traffic,
// so single lookups are cached while list queries always hit the
// database where filters and paging live.
type CachedProductRepository struct {
	inner  catalog.ProductRepository
	cache  ProductCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProductRepository(inner catalog.ProductRepository, productCache ProductCache, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProductRepository{
		inner:  inner,
		cache:  productCache,
		ttl:    ttl,
		logger: logger,
	}
}

// FindByID serves from cache when possible. Cache failures degrade to
// a database read rather than failing the request.
func (r *CachedProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	cached, err := r.cache.Get(ctx, id)
	if err != nil {
		r.logger.Warn("product cache read failed", zap.String("product_id", id.String()), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, product, r.ttl); err != nil {
		r.logger.Warn("product cache write failed", zap.String("product_id", id.String()), zap.Error(err))
	}
	return product, nil
}

func (r *CachedProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	return r.inner.FindAll(ctx, filter)
}

func (r *CachedProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return r.inner.Count(ctx, filter)
}

// Save writes through to the database and drops the cached entry, so
// the next read repopulates it with fresh data.
func (r *CachedProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.inner.Save(ctx, product); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, product.ID); err != nil {
		r.logger.Warn("product cache invalidation failed", zap.String("product_id", product.ID.String()), zap.Error(err))
	}
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Warn("product cache invalidation failed", zap.String("product_id", id.String()), zap.Error(err))
	}
	return nil
}

var _ catalog.ProductRepository = (*CachedProductRepository)(nil)
