package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
)

const (
	statusPlaced   = "placed"
	statusRejected = "rejected"
	statusFailed   = "failed"
)

type PlaceUseCaseImpl struct {
	Orders    checkout.Repository
	Customers customer.Repository
	Products  product.Repository
	Metrics   metrics.Metrics
	Logger    logger.Logger
}

func NewPlaceUseCase(
	orders checkout.Repository,
	customers customer.Repository,
	products product.Repository,
	m metrics.Metrics,
	log logger.Logger,
) *PlaceUseCaseImpl {
	return &PlaceUseCaseImpl{Orders: orders, Customers: customers, Products: products, Metrics: m, Logger: log}
}

// Execute saves the order and then the customer's new reward points. The two
// writes are separate: if the second fails the order stays placed.
func (uc *PlaceUseCaseImpl) Execute(ctx context.Context, input PlaceInput) (PlaceOutput, error) {
	c, err := uc.Customers.Find(ctx, input.CustomerID)
	if err != nil {
		uc.Metrics.RecordOrderPlaced(statusRejected)
		return PlaceOutput{}, err
	}

	items, err := buildItems(ctx, uc.Products, input.Items)
	if err != nil {
		uc.Metrics.RecordOrderPlaced(statusRejected)
		return PlaceOutput{}, err
	}

	o, err := checkout.Service{}.PlaceOrder(c, items)
	if err != nil {
		uc.Metrics.RecordOrderPlaced(statusRejected)
		return PlaceOutput{}, err
	}

	if err := uc.Orders.Create(ctx, o); err != nil {
		uc.Metrics.RecordOrderPlaced(statusFailed)
		return PlaceOutput{}, err
	}
	uc.Metrics.RecordOrderPlaced(statusPlaced)

	if err := uc.Customers.Update(ctx, c); err != nil {
		uc.Logger.Error(ctx, "order placed but reward points were not saved",
			logger.String("order_id", o.ID()),
			logger.String("customer_id", c.ID()),
			logger.WithError(err),
		)
		return PlaceOutput{}, fmt.Errorf("save reward points of customer %s: %w", c.ID(), err)
	}

	uc.Logger.Info(ctx, "order placed",
		logger.String("order_id", o.ID()),
		logger.String("customer_id", c.ID()),
		logger.Float64("total", o.Total()),
		logger.Int("reward_points", c.RewardPoints()),
	)
	return PlaceOutput{Output: toOutput(o), RewardPoints: c.RewardPoints()}, nil
}
