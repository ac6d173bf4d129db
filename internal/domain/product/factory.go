package product

import "github.com/google/uuid"

const (
	TypeA = "a"
	TypeB = "b"
)

type Factory struct{}

func (Factory) Create(kind string, name string, price float64) (Interface, error) {
	switch kind {
	case TypeA:
		return NewProduct(uuid.NewString(), name, price)
	case TypeB:
		return NewProductB(uuid.NewString(), name, price)
	default:
		return nil, ErrUnsupportedType
	}
}
