package customer

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/pkg/events"
)

type CreateUseCaseImpl struct {
	Repository      customer.Repository
	EventDispatcher events.EventDispatcher
}

func NewCreateUseCase(repo customer.Repository, dispatcher events.EventDispatcher) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{Repository: repo, EventDispatcher: dispatcher}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	var (
		c   *customer.Customer
		err error
	)
	if input.Address != nil {
		address, err := input.Address.toDomain()
		if err != nil {
			return Output{}, err
		}
		c, err = customer.Factory{}.CreateWithAddress(input.Name, address)
		if err != nil {
			return Output{}, err
		}
	} else {
		c, err = customer.Factory{}.Create(input.Name)
		if err != nil {
			return Output{}, err
		}
	}

	if err := uc.Repository.Create(ctx, c); err != nil {
		return Output{}, err
	}

	if err := uc.EventDispatcher.Dispatch(ctx, customer.NewCustomerCreatedEvent(c)); err != nil {
		return Output{}, err
	}
	return toOutput(c), nil
}
