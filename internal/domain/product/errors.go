package product

import "errors"

var (
	ErrIDIsRequired        = errors.New("id is required")
	ErrNameIsRequired      = errors.New("name is required")
	ErrPriceMustBePositive = errors.New("price must be greater than or equal to zero")
	ErrUnsupportedType     = errors.New("product type not supported")
	ErrProductNotFound     = errors.New("product not found")
)
