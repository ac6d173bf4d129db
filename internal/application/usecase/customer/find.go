package customer

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/customer"
)

type FindUseCaseImpl struct {
	Repository customer.Repository
}

func NewFindUseCase(repo customer.Repository) *FindUseCaseImpl {
	return &FindUseCaseImpl{Repository: repo}
}

func (uc *FindUseCaseImpl) Execute(ctx context.Context, input FindInput) (Output, error) {
	c, err := uc.Repository.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}
	return toOutput(c), nil
}

type ListUseCaseImpl struct {
	Repository customer.Repository
}

func NewListUseCase(repo customer.Repository) *ListUseCaseImpl {
	return &ListUseCaseImpl{Repository: repo}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, _ ListInput) (ListOutput, error) {
	customers, err := uc.Repository.FindAll(ctx)
	if err != nil {
		return ListOutput{}, err
	}
	out := ListOutput{Customers: make([]Output, 0, len(customers))}
	for _, c := range customers {
		out.Customers = append(out.Customers, toOutput(c))
	}
	return out, nil
}
