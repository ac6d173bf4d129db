package customer

import "github.com/google/uuid"

// Factory creates customers with generated identities.
type Factory struct{}

func (Factory) Create(name string) (*Customer, error) {
	return NewCustomer(uuid.NewString(), name)
}

func (f Factory) CreateWithAddress(name string, address Address) (*Customer, error) {
	c, err := f.Create(name)
	if err != nil {
		return nil, err
	}
	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}
	return c, nil
}
