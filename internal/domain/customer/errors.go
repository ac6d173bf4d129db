package customer

import "errors"

var (
	ErrIDIsRequired       = errors.New("id is required")
	ErrNameIsRequired     = errors.New("name is required")
	ErrAddressIsMandatory = errors.New("address is mandatory to activate a customer")
	ErrRewardPoints       = errors.New("reward points must be greater than or equal to zero")
	ErrCustomerNotFound   = errors.New("customer not found")

	ErrStreetRequired = errors.New("street is required")
	ErrNumberRequired = errors.New("number is required")
	ErrZipRequired    = errors.New("zip is required")
	ErrCityRequired   = errors.New("city is required")
)
