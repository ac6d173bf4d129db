package checkout

import (
	"math"

	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/google/uuid"
)

type Service struct{}

func (Service) Total(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}
	return total
}

// PlaceOrder opens an order for c and credits half of its total (rounded
// down) as reward points.
func (Service) PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderMustHaveItems
	}
	order, err := NewOrder(uuid.NewString(), c.ID(), items)
	if err != nil {
		return nil, err
	}
	if err := c.AddRewardPoints(int(math.Floor(order.Total() / 2))); err != nil {
		return nil, err
	}
	return order, nil
}
