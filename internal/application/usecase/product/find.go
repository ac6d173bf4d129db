package product

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
)

type FindUseCaseImpl struct {
	Repository product.Repository
}

func NewFindUseCase(repo product.Repository) *FindUseCaseImpl {
	return &FindUseCaseImpl{Repository: repo}
}

func (uc *FindUseCaseImpl) Execute(ctx context.Context, input FindInput) (Output, error) {
	p, err := uc.Repository.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}
	return toOutput(p), nil
}

type ListUseCaseImpl struct {
	Repository product.Repository
}

func NewListUseCase(repo product.Repository) *ListUseCaseImpl {
	return &ListUseCaseImpl{Repository: repo}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, _ ListInput) (ListOutput, error) {
	products, err := uc.Repository.FindAll(ctx)
	if err != nil {
		return ListOutput{}, err
	}
	return toListOutput(products), nil
}

func toListOutput(products []*product.Product) ListOutput {
	out := ListOutput{Products: make([]Output, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, toOutput(p))
	}
	return out
}
