package product

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu        sync.Mutex
	products  map[string]*product.Product
	updates   int
	updateErr error
}

func newMemoryRepository(t *testing.T, seed ...[2]interface{}) *memoryRepository {
	t.Helper()
	r := &memoryRepository{products: map[string]*product.Product{}}
	for _, s := range seed {
		p, err := product.NewProduct(s[0].(string), "Product "+s[0].(string), s[1].(float64))
		require.NoError(t, err)
		r.products[p.ID()] = p
	}
	return r
}

func (r *memoryRepository) Create(_ context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID()] = p
	return nil
}

func (r *memoryRepository) Update(_ context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.products[p.ID()]; !ok {
		return product.ErrProductNotFound
	}
	r.products[p.ID()] = p
	r.updates++
	return nil
}

func (r *memoryRepository) Find(_ context.Context, id string) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (r *memoryRepository) FindAll(context.Context) ([]*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func TestCreateUseCase(t *testing.T) {
	tests := []struct {
		name          string
		kind          string
		expectedPrice float64
	}{
		{"Should create a type a product", product.TypeA, 100},
		{"Should default to type a", "", 100},
		{"Should store a type b product at its doubled price", product.TypeB, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			repo := newMemoryRepository(t)
			dispatcher := events.NewDispatcher()
			var payloads []product.CreatedPayload
			require.NoError(t, dispatcher.Register(product.ProductCreatedEventName, events.HandlerFunc(func(_ context.Context, e events.Event) error {
				payloads = append(payloads, e.GetPayload().(product.CreatedPayload))
				return nil
			})))

			//Act
			out, err := NewCreateUseCase(repo, dispatcher).Execute(context.Background(), CreateInput{
				Type:        tt.kind,
				Name:        "Product 1",
				Description: "Product 1 description",
				Price:       100,
			})

			//Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, out.Price)
			stored, err := repo.Find(context.Background(), out.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, stored.Price())
			require.Len(t, payloads, 1)
			assert.Equal(t, "Product 1 description", payloads[0].Description)
			assert.Equal(t, tt.expectedPrice, payloads[0].Price)
		})
	}
}

func TestCreateUseCase_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateInput
		expectedErr error
	}{
		{"Should reject an unknown type", CreateInput{Type: "c", Name: "Product", Price: 1}, product.ErrUnsupportedType},
		{"Should reject an empty name", CreateInput{Name: "", Price: 1}, product.ErrNameIsRequired},
		{"Should reject a negative price", CreateInput{Name: "Product", Price: -1}, product.ErrPriceMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository(t)

			_, err := NewCreateUseCase(repo, events.NewDispatcher()).Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, repo.products)
		})
	}
}

func TestFindListAndUpdateUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(t, [2]interface{}{"1", 100.0}, [2]interface{}{"2", 200.0})

	found, err := NewFindUseCase(repo).Execute(ctx, FindInput{ID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Product 1", found.Name)

	list, err := NewListUseCase(repo).Execute(ctx, ListInput{})
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)

	updated, err := NewUpdateUseCase(repo).Execute(ctx, UpdateInput{ID: "1", Name: "Renamed", Price: 150})
	require.NoError(t, err)
	assert.Equal(t, Output{ID: "1", Name: "Renamed", Price: 150}, updated)

	_, err = NewUpdateUseCase(repo).Execute(ctx, UpdateInput{ID: "1", Name: "Renamed", Price: -1})
	assert.ErrorIs(t, err, product.ErrPriceMustBePositive)

	_, err = NewFindUseCase(repo).Execute(ctx, FindInput{ID: "missing"})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestIncreasePricesUseCase(t *testing.T) {
	//Arrange
	ctx := context.Background()
	repo := newMemoryRepository(t, [2]interface{}{"1", 10.0}, [2]interface{}{"2", 20.0}, [2]interface{}{"3", 30.0})
	uc := NewIncreasePricesUseCase(repo, 2)

	//Act
	out, err := uc.Execute(ctx, IncreasePricesInput{Percentage: 100})

	//Assert
	require.NoError(t, err)
	require.Len(t, out.Products, 3)
	assert.Equal(t, 20.0, out.Products[0].Price)
	assert.Equal(t, 40.0, out.Products[1].Price)
	assert.Equal(t, 60.0, out.Products[2].Price)
	assert.Equal(t, 3, repo.updates)
}

func TestIncreasePricesUseCase_SelectedIDs(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(t, [2]interface{}{"1", 10.0}, [2]interface{}{"2", 20.0})

	out, err := NewIncreasePricesUseCase(repo, 2).Execute(ctx, IncreasePricesInput{Percentage: 50, IDs: []string{"2"}})

	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, 30.0, out.Products[0].Price)
	untouched, _ := repo.Find(ctx, "1")
	assert.Equal(t, 10.0, untouched.Price())
}

func TestIncreasePricesUseCase_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Should not write when a price would turn negative", func(t *testing.T) {
		repo := newMemoryRepository(t, [2]interface{}{"1", 10.0})

		_, err := NewIncreasePricesUseCase(repo, 2).Execute(ctx, IncreasePricesInput{Percentage: -200})

		assert.ErrorIs(t, err, product.ErrPriceMustBePositive)
		assert.Equal(t, 0, repo.updates)
	})

	t.Run("Should surface a repository failure", func(t *testing.T) {
		repo := newMemoryRepository(t, [2]interface{}{"1", 10.0})
		repo.updateErr = errors.New("db down")

		_, err := NewIncreasePricesUseCase(repo, 2).Execute(ctx, IncreasePricesInput{Percentage: 10})

		assert.ErrorIs(t, err, repo.updateErr)
	})
}
