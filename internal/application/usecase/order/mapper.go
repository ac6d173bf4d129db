package order

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/google/uuid"
)

// buildItems prices every requested item from the current product catalog.
func buildItems(ctx context.Context, products product.Repository, in []ItemInput) ([]checkout.OrderItem, error) {
	if len(in) == 0 {
		return nil, checkout.ErrOrderMustHaveItems
	}
	items := make([]checkout.OrderItem, 0, len(in))
	for _, i := range in {
		p, err := products.Find(ctx, i.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name(), p.Price(), p.ID(), i.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toOutput(o *checkout.Order) Output {
	items := o.Items()
	out := Output{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      make([]ItemOutput, 0, len(items)),
		Total:      o.Total(),
	}
	for _, i := range items {
		out.Items = append(out.Items, ItemOutput{
			ID:        i.ID(),
			ProductID: i.ProductID(),
			Name:      i.Name(),
			Price:     i.Price(),
			Quantity:  i.Quantity(),
			Total:     i.Total(),
		})
	}
	return out
}
