package product

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/product"
)

type UpdateUseCaseImpl struct {
	Repository product.Repository
}

func NewUpdateUseCase(repo product.Repository) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{Repository: repo}
}

func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (Output, error) {
	p, err := uc.Repository.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}
	if err := p.ChangeName(input.Name); err != nil {
		return Output{}, err
	}
	if err := p.ChangePrice(input.Price); err != nil {
		return Output{}, err
	}
	if err := uc.Repository.Update(ctx, p); err != nil {
		return Output{}, err
	}
	return toOutput(p), nil
}
