package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const catalogCacheKey = "invest:products:catalog"

// CachedProductRepository is a cache-aside decorator over the product
// repository. Only the full catalog listing is cached; it is the hot read on
// every auto-selected simulation. Writes invalidate the cached catalog.
// Cache failures degrade to the underlying repository.
type CachedProductRepository struct {
	inner  portsrepo.ProductRepository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedProductRepository wraps inner with a redis-backed catalog cache.
func NewCachedProductRepository(inner portsrepo.ProductRepository, client *redis.Client, ttl time.Duration) *CachedProductRepository {
	return &CachedProductRepository{inner: inner, client: client, ttl: ttl}
}

var _ portsrepo.ProductRepository = (*CachedProductRepository)(nil)

func (r *CachedProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return r.inner.FindProductByID(ctx, productID)
}

func (r *CachedProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	payload, err := r.client.Get(ctx, catalogCacheKey).Bytes()
	if err == nil {
		var products []domain.Product
		if err := json.Unmarshal(payload, &products); err == nil {
			return products, nil
		}
		// A corrupt entry falls through to the database and gets rewritten.
		slog.Default().Warn("Discarding unreadable cached product catalog")
	} else if err != redis.Nil {
		slog.Default().Warn("Product catalog cache read failed", slog.String("error", err.Error()))
	}

	products, err := r.inner.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(products); err == nil {
		if err := r.client.Set(ctx, catalogCacheKey, payload, r.ttl).Err(); err != nil {
			slog.Default().Warn("Product catalog cache write failed", slog.String("error", err.Error()))
		}
	}
	return products, nil
}

func (r *CachedProductRepository) ListProductsByRecommendedProfile(ctx context.Context, profile string) ([]domain.Product, error) {
	return r.inner.ListProductsByRecommendedProfile(ctx, profile)
}

func (r *CachedProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	if err := r.inner.SaveProduct(ctx, product); err != nil {
		return err
	}
	if err := r.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidating product catalog cache: %w", err)
	}
	return nil
}

func (r *CachedProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.inner.CountProducts(ctx)
}
