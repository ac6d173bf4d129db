package database

import (
	"context"
	"testing"

	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T) *Conn {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	conn := NewConn(db, "sqlite3")
	require.NoError(t, CreateSchema(context.Background(), conn))
	return conn
}

func newTestRepositories(t *testing.T) (*CustomerRepository, *ProductRepository, *OrderRepository) {
	t.Helper()
	conn := newTestConn(t)
	log := logger.NewNop()
	return NewCustomerRepository(conn, log), NewProductRepository(conn, log), NewOrderRepository(conn, log)
}
