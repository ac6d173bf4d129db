package checkout

import "errors"

var (
	ErrIDIsRequired           = errors.New("id is required")
	ErrCustomerIDIsRequired   = errors.New("customer id is required")
	ErrProductIDIsRequired    = errors.New("product id is required")
	ErrItemsAreRequired       = errors.New("items are required")
	ErrQuantityMustBePositive = errors.New("quantity must be greater than zero")
	ErrPriceMustBePositive    = errors.New("price must be greater than or equal to zero")
	ErrOrderMustHaveItems     = errors.New("order must have at least one item")
	ErrOrderNotFound          = errors.New("order not found")
)
