package checkout

type Order struct {
	id         string
	customerID string
	items      []OrderItem
	total      float64
}

func NewOrder(id string, customerID string, items []OrderItem) (*Order, error) {
	order := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}
	order.calculateTotal()
	return order, nil
}

func (o *Order) Validate() error {
	if o.id == "" {
		return ErrIDIsRequired
	}
	if o.customerID == "" {
		return ErrCustomerIDIsRequired
	}
	if len(o.items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range o.items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	o.calculateTotal()
	return nil
}

// ChangeItems replaces the whole item set; the order keeps its previous items
// when the new set is invalid.
func (o *Order) ChangeItems(items []OrderItem) error {
	previous := o.items
	o.items = append([]OrderItem(nil), items...)
	if err := o.Validate(); err != nil {
		o.items = previous
		return err
	}
	o.calculateTotal()
	return nil
}

func (o *Order) calculateTotal() {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	o.total = total
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

func (o *Order) Total() float64 {
	return o.total
}
