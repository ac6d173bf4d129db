package product

import "github.com/DioGolang/GoCheckout/pkg/events"

const ProductCreatedEventName = "ProductCreatedEvent"

type CreatedPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewProductCreatedEvent(p Interface, description string) events.Event {
	return events.NewBaseEvent(ProductCreatedEventName, CreatedPayload{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: description,
		Price:       p.Price(),
	})
}
