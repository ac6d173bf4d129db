package order

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity interface {
	ID() string
}

type memoryRepository[T entity] struct {
	items     map[string]T
	notFound  error
	createErr error
	updateErr error
}

func newMemoryRepository[T entity](notFound error) *memoryRepository[T] {
	return &memoryRepository[T]{items: map[string]T{}, notFound: notFound}
}

func (r *memoryRepository[T]) Create(_ context.Context, v T) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.items[v.ID()] = v
	return nil
}

func (r *memoryRepository[T]) Update(_ context.Context, v T) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[v.ID()]; !ok {
		return r.notFound
	}
	r.items[v.ID()] = v
	return nil
}

func (r *memoryRepository[T]) Find(_ context.Context, id string) (T, error) {
	v, ok := r.items[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return v, nil
}

func (r *memoryRepository[T]) FindAll(context.Context) ([]T, error) {
	out := make([]T, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type statusMetrics struct {
	metrics.Nop
	statuses []string
}

func (m *statusMetrics) RecordOrderPlaced(status string) {
	m.statuses = append(m.statuses, status)
}

type fixture struct {
	orders    *memoryRepository[*checkout.Order]
	customers *memoryRepository[*customer.Customer]
	products  *memoryRepository[*product.Product]
	metrics   *statusMetrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		orders:    newMemoryRepository[*checkout.Order](checkout.ErrOrderNotFound),
		customers: newMemoryRepository[*customer.Customer](customer.ErrCustomerNotFound),
		products:  newMemoryRepository[*product.Product](product.ErrProductNotFound),
		metrics:   &statusMetrics{},
	}
	c, err := customer.NewCustomer("c1", "Customer 1")
	require.NoError(t, err)
	f.customers.items[c.ID()] = c

	p1, err := product.NewProduct("p1", "Product 1", 100)
	require.NoError(t, err)
	p2, err := product.NewProduct("p2", "Product 2", 15)
	require.NoError(t, err)
	f.products.items[p1.ID()] = p1
	f.products.items[p2.ID()] = p2
	return f
}

func (f fixture) place() *PlaceUseCaseImpl {
	return NewPlaceUseCase(f.orders, f.customers, f.products, f.metrics, logger.NewNop())
}

func TestPlaceUseCase(t *testing.T) {
	//Arrange
	f := newFixture(t)

	//Act
	out, err := f.place().Execute(context.Background(), PlaceInput{
		CustomerID: "c1",
		Items: []ItemInput{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 3},
		},
	})

	//Assert
	require.NoError(t, err)
	assert.Equal(t, 145.0, out.Total)
	assert.Equal(t, 72, out.RewardPoints)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Product 2", out.Items[1].Name)
	assert.Equal(t, 45.0, out.Items[1].Total)
	assert.Contains(t, f.orders.items, out.ID)
	assert.Equal(t, 72, f.customers.items["c1"].RewardPoints())
	assert.Equal(t, []string{statusPlaced}, f.metrics.statuses)
}

func TestPlaceUseCase_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		input       PlaceInput
		expectedErr error
	}{
		{"Should reject an unknown customer", PlaceInput{CustomerID: "missing", Items: []ItemInput{{ProductID: "p1", Quantity: 1}}}, customer.ErrCustomerNotFound},
		{"Should reject an order without items", PlaceInput{CustomerID: "c1"}, checkout.ErrOrderMustHaveItems},
		{"Should reject an unknown product", PlaceInput{CustomerID: "c1", Items: []ItemInput{{ProductID: "missing", Quantity: 1}}}, product.ErrProductNotFound},
		{"Should reject a zero quantity", PlaceInput{CustomerID: "c1", Items: []ItemInput{{ProductID: "p1", Quantity: 0}}}, checkout.ErrQuantityMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.place().Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, f.orders.items)
			assert.Equal(t, 0, f.customers.items["c1"].RewardPoints())
			assert.Equal(t, []string{statusRejected}, f.metrics.statuses)
		})
	}
}

func TestPlaceUseCase_StorageFailures(t *testing.T) {
	input := PlaceInput{CustomerID: "c1", Items: []ItemInput{{ProductID: "p1", Quantity: 1}}}

	t.Run("Should fail when the order is not saved", func(t *testing.T) {
		f := newFixture(t)
		f.orders.createErr = errors.New("db down")

		_, err := f.place().Execute(context.Background(), input)

		assert.ErrorIs(t, err, f.orders.createErr)
		assert.Equal(t, []string{statusFailed}, f.metrics.statuses)
	})

	t.Run("Should keep the order when reward points are not saved", func(t *testing.T) {
		f := newFixture(t)
		f.customers.updateErr = errors.New("db down")

		_, err := f.place().Execute(context.Background(), input)

		assert.ErrorIs(t, err, f.customers.updateErr)
		assert.Len(t, f.orders.items, 1)
		assert.Equal(t, []string{statusPlaced}, f.metrics.statuses)
	})
}

func TestFindListAndUpdateUseCase(t *testing.T) {
	//Arrange
	ctx := context.Background()
	f := newFixture(t)
	placed, err := f.place().Execute(ctx, PlaceInput{CustomerID: "c1", Items: []ItemInput{{ProductID: "p1", Quantity: 2}}})
	require.NoError(t, err)

	//Act
	found, err := NewFindUseCase(f.orders).Execute(ctx, FindInput{ID: placed.ID})
	require.NoError(t, err)
	updated, err := NewUpdateUseCase(f.orders, f.products).Execute(ctx, UpdateInput{
		ID:    placed.ID,
		Items: []ItemInput{{ProductID: "p2", Quantity: 2}, {ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	list, err := NewListUseCase(f.orders).Execute(ctx, ListInput{})
	require.NoError(t, err)

	//Assert
	assert.Equal(t, 200.0, found.Total)
	assert.Equal(t, 130.0, updated.Total)
	assert.Len(t, updated.Items, 2)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, 130.0, list.Total)
	assert.Equal(t, 100, f.customers.items["c1"].RewardPoints())
}

func TestUpdateUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	placed, err := f.place().Execute(ctx, PlaceInput{CustomerID: "c1", Items: []ItemInput{{ProductID: "p1", Quantity: 2}}})
	require.NoError(t, err)

	_, err = NewUpdateUseCase(f.orders, f.products).Execute(ctx, UpdateInput{ID: "missing", Items: []ItemInput{{ProductID: "p1", Quantity: 1}}})
	assert.ErrorIs(t, err, checkout.ErrOrderNotFound)

	_, err = NewUpdateUseCase(f.orders, f.products).Execute(ctx, UpdateInput{ID: placed.ID})
	assert.ErrorIs(t, err, checkout.ErrOrderMustHaveItems)

	found, err := NewFindUseCase(f.orders).Execute(ctx, FindInput{ID: placed.ID})
	require.NoError(t, err)
	assert.Equal(t, 200.0, found.Total)
}
