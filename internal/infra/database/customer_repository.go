package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	tracing "github.com/DioGolang/GoCheckout/pkg/otel"
	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

type CustomerRepository struct {
	conn   *Conn
	logger logger.Logger
}

func NewCustomerRepository(conn *Conn, log logger.Logger) *CustomerRepository {
	return &CustomerRepository{conn: conn, logger: log}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.customer.create", attribute.String("customer.id", c.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.Insert(tableCustomers).Prepared(true).Rows(toCustomerRow(c)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert customer: %w", err)
	}
	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert customer %s: %w", c.ID(), err)
	}

	r.logger.Debug(ctx, "customer created", logger.String("customer_id", c.ID()))
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.customer.update", attribute.String("customer.id", c.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.Update(tableCustomers).Prepared(true).
		Set(toCustomerRow(c)).
		Where(goqu.C("id").Eq(c.ID())).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update customer: %w", err)
	}
	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update customer %s: %w", c.ID(), err)
	}
	if err = expectOneRow(res, customer.ErrCustomerNotFound); err != nil {
		return err
	}

	r.logger.Debug(ctx, "customer updated", logger.String("customer_id", c.ID()))
	return nil
}

func (r *CustomerRepository) Find(ctx context.Context, id string) (_ *customer.Customer, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.customer.find", attribute.String("customer.id", id))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableCustomers).Prepared(true).
		Select(customerColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select customer: %w", err)
	}

	var row customerRow
	if err = sqlx.GetContext(ctx, r.conn, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("select customer %s: %w", id, err)
	}
	return row.toEntity()
}

func (r *CustomerRepository) FindAll(ctx context.Context) (_ []*customer.Customer, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.customer.find_all")
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableCustomers).Prepared(true).
		Select(customerColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select customers: %w", err)
	}

	var rows []customerRow
	if err = sqlx.SelectContext(ctx, r.conn, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}

	out := make([]*customer.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("restore customer %s: %w", row.ID, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// expectOneRow maps an update that touched nothing to notFound.
func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
