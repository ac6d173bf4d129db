package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	tracing "github.com/DioGolang/GoCheckout/pkg/otel"
	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

type ProductRepository struct {
	conn   *Conn
	logger logger.Logger
}

func NewProductRepository(conn *Conn, log logger.Logger) *ProductRepository {
	return &ProductRepository{conn: conn, logger: log}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.product.create", attribute.String("product.id", p.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.Insert(tableProducts).Prepared(true).Rows(toProductRow(p)).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ID(), err)
	}

	r.logger.Debug(ctx, "product created",
		logger.String("product_id", p.ID()),
		logger.Float64("price", p.Price()),
	)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.product.update", attribute.String("product.id", p.ID()))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.Update(tableProducts).Prepared(true).
		Set(toProductRow(p)).
		Where(goqu.C("id").Eq(p.ID())).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ID(), err)
	}
	if err = expectOneRow(res, product.ErrProductNotFound); err != nil {
		return err
	}

	r.logger.Debug(ctx, "product updated", logger.String("product_id", p.ID()))
	return nil
}

func (r *ProductRepository) Find(ctx context.Context, id string) (_ *product.Product, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.product.find", attribute.String("product.id", id))
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableProducts).Prepared(true).
		Select(productColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select product: %w", err)
	}

	var row productRow
	if err = sqlx.GetContext(ctx, r.conn, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("select product %s: %w", id, err)
	}
	return row.toEntity()
}

func (r *ProductRepository) FindAll(ctx context.Context) (_ []*product.Product, err error) {
	ctx, span := tracing.StartSpan(ctx, "repository.product.find_all")
	defer func() { tracing.EndSpan(span, err) }()

	query, args, err := r.conn.Dialect.From(tableProducts).Prepared(true).
		Select(productColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select products: %w", err)
	}

	var rows []productRow
	if err = sqlx.SelectContext(ctx, r.conn, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	out := make([]*product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("restore product %s: %w", row.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

var _ product.Repository = (*ProductRepository)(nil)
