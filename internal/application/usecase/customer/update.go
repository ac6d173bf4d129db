package customer

import (
	"context"

	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/pkg/events"
)

type UpdateUseCaseImpl struct {
	Repository      customer.Repository
	EventDispatcher events.EventDispatcher
}

func NewUpdateUseCase(repo customer.Repository, dispatcher events.EventDispatcher) *UpdateUseCaseImpl {
	return &UpdateUseCaseImpl{Repository: repo, EventDispatcher: dispatcher}
}

// Execute applies the input to the stored customer. AddressChangedEvent is
// dispatched after the save, and only when the address actually changed.
func (uc *UpdateUseCaseImpl) Execute(ctx context.Context, input UpdateInput) (Output, error) {
	c, err := uc.Repository.Find(ctx, input.ID)
	if err != nil {
		return Output{}, err
	}

	if err := c.ChangeName(input.Name); err != nil {
		return Output{}, err
	}

	addressChanged := false
	if input.Address != nil {
		address, err := input.Address.toDomain()
		if err != nil {
			return Output{}, err
		}
		current, _ := c.Address()
		if current != address {
			if err := c.ChangeAddress(address); err != nil {
				return Output{}, err
			}
			addressChanged = true
		}
	}

	if input.Active {
		if err := c.Activate(); err != nil {
			return Output{}, err
		}
	} else {
		c.Deactivate()
	}

	if err := uc.Repository.Update(ctx, c); err != nil {
		return Output{}, err
	}

	if addressChanged {
		if err := uc.EventDispatcher.Dispatch(ctx, customer.NewAddressChangedEvent(c)); err != nil {
			return Output{}, err
		}
	}
	return toOutput(c), nil
}
