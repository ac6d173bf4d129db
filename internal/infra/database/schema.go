package database

import (
	"context"
	"fmt"
)

const (
	tableCustomers  = "customers"
	tableProducts   = "products"
	tableOrders     = "orders"
	tableOrderItems = "order_items"
)

// The statements only use types and clauses shared by postgres, mysql and
// sqlite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(255) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number INTEGER NOT NULL,
		zipcode VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL,
		reward_points INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(255) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(255) NOT NULL PRIMARY KEY,
		customer_id VARCHAR(255) NOT NULL,
		total DOUBLE PRECISION NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers (id)
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR(255) NOT NULL PRIMARY KEY,
		product_id VARCHAR(255) NOT NULL,
		order_id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		quantity INTEGER NOT NULL,
		FOREIGN KEY (product_id) REFERENCES products (id),
		FOREIGN KEY (order_id) REFERENCES orders (id)
	)`,
}

// CreateSchema creates the missing tables. Existing tables are left as they
// are.
func CreateSchema(ctx context.Context, conn *Conn) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
