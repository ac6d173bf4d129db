package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	err     error
	gets    int
	ttls    map[string]time.Duration
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.err != nil {
		return nil, s.err
	}
	b, ok := s.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return b, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.data, key)
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeRepository struct {
	products map[string]*product.Product
	finds    int
	// afterRead runs once the product has been read, before Find returns.
	afterRead func()
}

func (r *fakeRepository) Create(_ context.Context, p *product.Product) error {
	r.products[p.ID()] = p
	return nil
}

func (r *fakeRepository) Update(ctx context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID()]; !ok {
		return product.ErrProductNotFound
	}
	return r.Create(ctx, p)
}

func (r *fakeRepository) Find(_ context.Context, id string) (*product.Product, error) {
	r.finds++
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	if r.afterRead != nil {
		r.afterRead()
	}
	return p, nil
}

func (r *fakeRepository) FindAll(context.Context) ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type countingMetrics struct {
	metrics.Nop
	hits, misses int
}

func (m *countingMetrics) IncCacheHit(string)  { m.hits++ }
func (m *countingMetrics) IncCacheMiss(string) { m.misses++ }

func newFixture(t *testing.T) (*ProductRepository, *fakeRepository, *fakeStore, *countingMetrics) {
	t.Helper()
	p, err := product.NewProduct("1", "Product 1", 100)
	require.NoError(t, err)
	next := &fakeRepository{products: map[string]*product.Product{"1": p}}
	store := newFakeStore()
	m := &countingMetrics{}
	return NewProductRepository(next, store, time.Minute, logger.NewNop(), m), next, store, m
}

func TestProductRepository_ReadThrough(t *testing.T) {
	//Arrange
	ctx := context.Background()
	repo, next, store, m := newFixture(t)

	//Act
	first, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	second, err := repo.Find(ctx, "1")
	require.NoError(t, err)

	//Assert
	assert.Equal(t, 1, next.finds)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.hits)
	assert.Equal(t, first.Name(), second.Name())
	assert.Equal(t, 100.0, second.Price())
	assert.Equal(t, time.Minute, store.ttls["product:1"])
}

func TestProductRepository_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	repo, next, store, _ := newFixture(t)
	_, err := repo.Find(ctx, "1")
	require.NoError(t, err)

	p, err := product.NewProduct("1", "Product 1", 250)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 250.0, found.Price())
	assert.Equal(t, 2, next.finds)
	assert.Contains(t, store.deleted, "product:1")
}

func TestProductRepository_UpdateDuringMissSkipsFill(t *testing.T) {
	//Arrange
	ctx := context.Background()
	repo, next, store, _ := newFixture(t)
	updated, err := product.NewProduct("1", "Product 1", 250)
	require.NoError(t, err)
	next.afterRead = func() {
		next.afterRead = nil
		require.NoError(t, repo.Update(ctx, updated))
	}

	//Act
	stale, err := repo.Find(ctx, "1")
	require.NoError(t, err)
	fresh, err := repo.Find(ctx, "1")
	require.NoError(t, err)

	//Assert
	assert.Equal(t, 100.0, stale.Price())
	assert.Equal(t, 250.0, fresh.Price())
	assert.Equal(t, 2, next.finds)
	_, cached := store.data["product:1"]
	assert.True(t, cached)
	assert.Equal(t, 250.0, mustFind(t, repo, "1").Price())
	assert.Equal(t, 2, next.finds)
}

func mustFind(t *testing.T, repo *ProductRepository, id string) *product.Product {
	t.Helper()
	p, err := repo.Find(context.Background(), id)
	require.NoError(t, err)
	return p
}

func TestProductRepository_FailsOpen(t *testing.T) {
	//Arrange
	ctx := context.Background()
	repo, next, store, m := newFixture(t)
	store.err = errors.New("connection refused")

	//Act
	var err error
	for i := 0; i < 10; i++ {
		_, err = repo.Find(ctx, "1")
		require.NoError(t, err)
	}

	//Assert
	assert.Equal(t, 10, next.finds)
	assert.Equal(t, 10, m.misses)
	// get and fill both fail, so the breaker opens on the third get
	assert.Equal(t, 3, store.gets)
}

func TestProductRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo, _, store, _ := newFixture(t)

	_, err := repo.Find(ctx, "missing")

	assert.ErrorIs(t, err, product.ErrProductNotFound)
	assert.NotContains(t, store.data, "product:missing")
}

func TestProductRepository_CorruptEntryFallsBack(t *testing.T) {
	ctx := context.Background()
	repo, next, store, _ := newFixture(t)
	store.data["product:1"] = []byte("{not json")

	p, err := repo.Find(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, "Product 1", p.Name())
	assert.Equal(t, 1, next.finds)
}
