package customer

import "github.com/DioGolang/GoCheckout/internal/domain/customer"

func (in AddressInput) toDomain() (customer.Address, error) {
	return customer.NewAddress(in.Street, in.Number, in.Zip, in.City)
}

func toOutput(c *customer.Customer) Output {
	out := Output{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if a, ok := c.Address(); ok {
		out.Address = &AddressOutput{Street: a.Street(), Number: a.Number(), Zip: a.Zip(), City: a.City()}
	}
	return out
}
