package order

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
)

type FindUseCaseImpl struct {
	Repository checkout.Repository
}

func NewFindUseCase(repo checkout.Repository) *FindUseCaseImpl {
	return &FindUseCaseImpl{Repository: repo}
}

func (uc *FindUseCaseImpl) Execute(ctx context.Context, input FindInput) (Output, error) {
	o, err := uc.Repository.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}
	return toOutput(o), nil
}

type ListUseCaseImpl struct {
	Repository checkout.Repository
}

func NewListUseCase(repo checkout.Repository) *ListUseCaseImpl {
	return &ListUseCaseImpl{Repository: repo}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, _ ListInput) (ListOutput, error) {
	orders, err := uc.Repository.FindAll(ctx)
	if err != nil {
		return ListOutput{}, err
	}
	out := ListOutput{
		Orders: make([]Output, 0, len(orders)),
		Total:  checkout.Service{}.Total(orders),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, toOutput(o))
	}
	return out, nil
}
