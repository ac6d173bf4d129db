package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DioGolang/GoCheckout/internal/application/usecase"
	customeruc "github.com/DioGolang/GoCheckout/internal/application/usecase/customer"
	orderuc "github.com/DioGolang/GoCheckout/internal/application/usecase/order"
	productuc "github.com/DioGolang/GoCheckout/internal/application/usecase/product"
	"github.com/DioGolang/GoCheckout/internal/infra/database"
	"github.com/DioGolang/GoCheckout/internal/infra/web/handler"
	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	conn := database.NewConn(db, "sqlite3")
	require.NoError(t, database.CreateSchema(context.Background(), conn))

	log := logger.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(reg, "checkout_test")
	dispatcher := events.NewDispatcher()

	customers := database.NewCustomerRepository(conn, log)
	products := database.NewProductRepository(conn, log)
	orders := database.NewOrderRepository(conn, log)

	router := NewRouter(RouterConfig{
		ServiceName: "checkout-test",
		Logger:      log,
		Metrics:     m,
		Gatherer:    reg,
		Customers: &handler.Customer{
			CreateUseCase: usecase.Instrument[customeruc.CreateInput, customeruc.Output]("CreateCustomer", m, customeruc.NewCreateUseCase(customers, dispatcher)),
			FindUseCase:   customeruc.NewFindUseCase(customers),
			ListUseCase:   customeruc.NewListUseCase(customers),
			UpdateUseCase: customeruc.NewUpdateUseCase(customers, dispatcher),
			Logger:        log,
		},
		Products: &handler.Product{
			CreateUseCase:         productuc.NewCreateUseCase(products, dispatcher),
			FindUseCase:           productuc.NewFindUseCase(products),
			ListUseCase:           productuc.NewListUseCase(products),
			UpdateUseCase:         productuc.NewUpdateUseCase(products),
			IncreasePricesUseCase: productuc.NewIncreasePricesUseCase(products, 2),
			Logger:                log,
		},
		Orders: &handler.Order{
			PlaceUseCase:  orderuc.NewPlaceUseCase(orders, customers, products, m, log),
			FindUseCase:   orderuc.NewFindUseCase(orders),
			ListUseCase:   orderuc.NewListUseCase(orders),
			UpdateUseCase: orderuc.NewUpdateUseCase(orders, products),
			Logger:        log,
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(s))
	} else if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCheckoutFlow(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"

	var c customeruc.Output
	status := do(t, http.MethodPost, api+"/customers", customeruc.CreateInput{
		Name:    "John",
		Address: &customeruc.AddressInput{Street: "Street", Number: 1, Zip: "13330-250", City: "São Paulo"},
	}, &c)
	require.Equal(t, http.StatusCreated, status)

	var p productuc.Output
	status = do(t, http.MethodPost, api+"/products", productuc.CreateInput{Type: "b", Name: "Product B", Price: 10}, &p)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 20.0, p.Price)

	var placed orderuc.PlaceOutput
	status = do(t, http.MethodPost, api+"/orders", orderuc.PlaceInput{
		CustomerID: c.ID,
		Items:      []orderuc.ItemInput{{ProductID: p.ID, Quantity: 3}},
	}, &placed)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 60.0, placed.Total)
	assert.Equal(t, 30, placed.RewardPoints)

	var found customeruc.Output
	status = do(t, http.MethodGet, api+"/customers/"+c.ID, nil, &found)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 30, found.RewardPoints)

	var order orderuc.Output
	status = do(t, http.MethodGet, api+"/orders/"+placed.ID, nil, &order)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Product B", order.Items[0].Name)

	var increased productuc.ListOutput
	status = do(t, http.MethodPost, api+"/products/increase-price", productuc.IncreasePricesInput{Percentage: 10}, &increased)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, increased.Products, 1)
	assert.InDelta(t, 22.0, increased.Products[0].Price, 0.0001)

	var orders orderuc.ListOutput
	status = do(t, http.MethodGet, api+"/orders", nil, &orders)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, orders.Orders, 1)
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"

	tests := []struct {
		name     string
		method   string
		url      string
		body     any
		expected int
	}{
		{"Should answer 400 on malformed json", http.MethodPost, api + "/customers", "{", http.StatusBadRequest},
		{"Should answer 422 on a validation error", http.MethodPost, api + "/customers", customeruc.CreateInput{}, http.StatusUnprocessableEntity},
		{"Should answer 422 on an unknown product type", http.MethodPost, api + "/products", productuc.CreateInput{Type: "z", Name: "x"}, http.StatusUnprocessableEntity},
		{"Should answer 404 on an unknown customer", http.MethodGet, api + "/customers/missing", nil, http.StatusNotFound},
		{"Should answer 404 on an unknown product", http.MethodPut, api + "/products/missing", productuc.UpdateInput{Name: "x", Price: 1}, http.StatusNotFound},
		{"Should answer 404 on an unknown order", http.MethodGet, api + "/orders/missing", nil, http.StatusNotFound},
		{"Should answer 404 when ordering for an unknown customer", http.MethodPost, api + "/orders", orderuc.PlaceInput{CustomerID: "missing"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			status := do(t, tt.method, tt.url, tt.body, &body)

			assert.Equal(t, tt.expected, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	do(t, http.MethodGet, srv.URL+"/api/v1/customers", nil, nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
