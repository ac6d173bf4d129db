package order

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
)

type UpdateUseCaseImpl struct {
	Orders   checkout.Repository
	Products product.Repository
}

func NewUpdateUseCase(orders checkout.Repository, products product.Repository) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{Orders: orders, Products: products}
}

// Execute reprices the new items from the catalog. Reward points granted when
// the order was placed are not adjusted.
func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (Output, error) {
	o, err := uc.Orders.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}

	items, err := buildItems(ctx, uc.Products, input.Items)
	if err != nil {
		return Output{}, err
	}
	if err := o.ChangeItems(items); err != nil {
		return Output{}, err
	}

	if err := uc.Orders.Update(ctx, o); err != nil {
		return Output{}, err
	}
	return toOutput(o), nil
}
