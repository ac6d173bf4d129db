package product

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/pkg/events"
)

type CreateUseCaseImpl struct {
	Repository      product.Repository
	EventDispatcher events.EventDispatcher
}

func NewCreateUseCase(repo product.Repository, dispatcher events.EventDispatcher) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{Repository: repo, EventDispatcher: dispatcher}
}

// Execute builds the product with the factory for input.Type and stores it
// with the price it exposes, so a type b product is stored at its doubled
// price.
func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	kind := input.Type
	if kind == "" {
		kind = product.TypeA
	}
	p, err := product.Factory{}.Create(kind, input.Name, input.Price)
	if err != nil {
		return Output{}, err
	}

	stored, ok := p.(*product.Product)
	if !ok {
		stored, err = product.NewProduct(p.ID(), p.Name(), p.Price())
		if err != nil {
			return Output{}, err
		}
	}

	if err := uc.Repository.Create(ctx, stored); err != nil {
		return Output{}, err
	}

	if err := uc.EventDispatcher.Dispatch(ctx, product.NewProductCreatedEvent(stored, input.Description)); err != nil {
		return Output{}, err
	}
	return toOutput(stored), nil
}

func toOutput(p product.Interface) Output {
	return Output{ID: p.ID(), Name: p.Name(), Price: p.Price()}
}
