package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/sony/gobreaker"
)

const productCacheType = "product"

type productEntry struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductRepository serves Find from the cache and falls back to next. Any
// cache failure degrades to next.
//
// A Find miss only fills the cache when no write to the same product went
// through this repository while it was reading from next. Writes made by
// another process can still be overwritten by a late fill; those entries
// live until the TTL expires.
type ProductRepository struct {
	next    product.Repository
	store   Store
	cb      *gobreaker.CircuitBreaker
	ttl     time.Duration
	logger  logger.Logger
	metrics metrics.Metrics

	mu       sync.Mutex
	versions map[string]uint64
}

func NewProductRepository(
	next product.Repository,
	store Store,
	ttl time.Duration,
	log logger.Logger,
	m metrics.Metrics,
) *ProductRepository {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-product-cache",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrMiss)
		},
	})
	return &ProductRepository{
		next:     next,
		store:    store,
		cb:       cb,
		ttl:      ttl,
		logger:   log,
		metrics:  m,
		versions: map[string]uint64{},
	}
}

func (r *ProductRepository) version(id string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.versions[id]
}

// bump marks id as written. Versions are never pruned; the map grows with
// the number of distinct products written.
func (r *ProductRepository) bump(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[id]++
}

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

func (r *ProductRepository) Find(ctx context.Context, id string) (*product.Product, error) {
	key := productKey(id)

	raw, err := r.cb.Execute(func() (interface{}, error) {
		return r.store.Get(ctx, key)
	})
	switch {
	case err == nil:
		var entry productEntry
		if err := jsoniter.ConfigFastest.Unmarshal(raw.([]byte), &entry); err == nil {
			if p, err := product.NewProduct(entry.ID, entry.Name, entry.Price); err == nil {
				r.metrics.IncCacheHit(productCacheType)
				return p, nil
			}
		}
		r.logger.Warn(ctx, "discarding unreadable cache entry", logger.String("key", key))
	case errors.Is(err, ErrMiss):
	default:
		r.logger.Warn(ctx, "cache unavailable, reading from database",
			logger.String("key", key),
			logger.WithError(err),
		)
	}
	r.metrics.IncCacheMiss(productCacheType)

	seen := r.version(id)
	p, err := r.next.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.version(id) != seen {
		return p, nil
	}
	r.fill(ctx, key, p)
	// a write may have landed between the check and the fill
	if r.version(id) != seen {
		r.invalidate(ctx, id)
	}
	return p, nil
}

func (r *ProductRepository) fill(ctx context.Context, key string, p *product.Product) {
	b, err := jsoniter.ConfigFastest.Marshal(productEntry{ID: p.ID(), Name: p.Name(), Price: p.Price()})
	if err != nil {
		r.logger.Warn(ctx, "encode cache entry", logger.String("key", key), logger.WithError(err))
		return
	}
	_, err = r.cb.Execute(func() (interface{}, error) {
		return nil, r.store.Set(ctx, key, b, r.ttl)
	})
	if err != nil {
		r.logger.Warn(ctx, "cache fill failed", logger.String("key", key), logger.WithError(err))
	}
}

func (r *ProductRepository) invalidate(ctx context.Context, id string) {
	key := productKey(id)
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.store.Del(ctx, key)
	})
	if err != nil {
		r.logger.Warn(ctx, "cache invalidation failed", logger.String("key", key), logger.WithError(err))
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.bump(p.ID())
	r.invalidate(ctx, p.ID())
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.bump(p.ID())
	r.invalidate(ctx, p.ID())
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	return r.next.FindAll(ctx)
}

var _ product.Repository = (*ProductRepository)(nil)
