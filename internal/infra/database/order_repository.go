package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	tracing "github.com/DioGolang/GoCheckout/pkg/otel"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

// OrderRepository persists the order aggregate: one orders row plus its
// order_items rows, always written together.
type OrderRepository struct {
	conn   *Conn
	logger logger.Logger
}

func NewOrderRepository(conn *Conn, log logger.Logger) *OrderRepository {
	return &OrderRepository{conn: conn, logger: log}
}

func (r *OrderRepository) Create(ctx context.Context, o *checkout.Order) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.order.create", attribute.String("order.id", o.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	order, items := toOrderRows(o)
	err = r.conn.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := r.conn.Dialect.Insert(tableOrders).Prepared(true).Rows(order).ToSQL()
		if err != nil {
			return fmt.Errorf("build insert order: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert order %s: %w", o.ID(), err)
		}
		return r.insertItems(ctx, tx, o.ID(), items)
	})
	if err != nil {
		return err
	}

	r.logger.Debug(ctx, "order created",
		logger.String("order_id", o.ID()),
		logger.Int("items", len(items)),
		logger.Float64("total", o.Total()),
	)
	return nil
}

// Update rewrites the order total and replaces its item set.
func (r *OrderRepository) Update(ctx context.Context, o *checkout.Order) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.order.update", attribute.String("order.id", o.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	order, items := toOrderRows(o)
	err = r.conn.inTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := r.conn.Dialect.Update(tableOrders).Prepared(true).
			Set(order).
			Where(goqu.C("id").Eq(o.ID())).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update order: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update order %s: %w", o.ID(), err)
		}
		if err := expectOneRow(res, checkout.ErrOrderNotFound); err != nil {
			return err
		}

		query, args, err = r.conn.Dialect.Delete(tableOrderItems).Prepared(true).
			Where(goqu.C("order_id").Eq(o.ID())).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete order items: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete items of order %s: %w", o.ID(), err)
		}
		return r.insertItems(ctx, tx, o.ID(), items)
	})
	if err != nil {
		return err
	}

	r.logger.Debug(ctx, "order updated",
		logger.String("order_id", o.ID()),
		logger.Int("items", len(items)),
	)
	return nil
}

func (r *OrderRepository) insertItems(ctx context.Context, tx *sqlx.Tx, orderID string, items []interface{}) error {
	if len(items) == 0 {
		return nil
	}
	query, args, err := r.conn.Dialect.Insert(tableOrderItems).Prepared(true).Rows(items...).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert order items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert items of order %s: %w", orderID, err)
	}
	return nil
}

func (r *OrderRepository) Find(ctx context.Context, id string) (_ *checkout.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.order.find", attribute.String("order.id", id))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableOrders).Prepared(true).
		Select(orderColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select order: %w", err)
	}

	var row orderRow
	if err = sqlx.GetContext(ctx, r.conn, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, checkout.ErrOrderNotFound
		}
		return nil, fmt.Errorf("select order %s: %w", id, err)
	}

	items, err := r.selectItems(ctx, goqu.C("order_id").Eq(id))
	if err != nil {
		return nil, err
	}
	return toOrderEntity(row, items)
}

func (r *OrderRepository) FindAll(ctx context.Context) (_ []*checkout.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.order.find_all")
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableOrders).Prepared(true).
		Select(orderColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select orders: %w", err)
	}

	var rows []orderRow
	if err = sqlx.SelectContext(ctx, r.conn, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	if len(rows) == 0 {
		return []*checkout.Order{}, nil
	}

	ids := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := r.selectItems(ctx, goqu.C("order_id").In(ids...))
	if err != nil {
		return nil, err
	}
	byOrder := make(map[string][]orderItemRow, len(rows))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	out := make([]*checkout.Order, 0, len(rows))
	for _, row := range rows {
		o, err := toOrderEntity(row, byOrder[row.ID])
		if err != nil {
			return nil, fmt.Errorf("restore order %s: %w", row.ID, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepository) selectItems(ctx context.Context, where exp.Expression) ([]orderItemRow, error) {
	query, args, err := r.conn.Dialect.From(tableOrderItems).Prepared(true).
		Select(orderItemColumns...).
		Where(where).
		Order(goqu.C("order_id").Asc(), goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select order items: %w", err)
	}

	var items []orderItemRow
	if err := sqlx.SelectContext(ctx, r.conn, &items, query, args...); err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	return items, nil
}

var _ checkout.Repository = (*OrderRepository)(nil)
