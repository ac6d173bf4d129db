package customer

import "github.com/DioGolang/GoCheckout/pkg/events"

const (
	CustomerCreatedEventName = "CustomerCreatedEvent"
	AddressChangedEventName  = "AddressChangedEvent"
)

// EventPayload is the data carried by every customer event.
type EventPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func payloadOf(c *Customer) EventPayload {
	p := EventPayload{ID: c.ID(), Name: c.Name()}
	if address, ok := c.Address(); ok {
		p.Address = address.String()
	}
	return p
}

func NewCustomerCreatedEvent(c *Customer) events.Event {
	return events.NewBaseEvent(CustomerCreatedEventName, payloadOf(c))
}

func NewAddressChangedEvent(c *Customer) events.Event {
	return events.NewBaseEvent(AddressChangedEventName, payloadOf(c))
}
