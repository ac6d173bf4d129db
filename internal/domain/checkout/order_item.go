package checkout

// OrderItem is a line of an order. Price is the unit price captured when the
// item was added.
type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

func NewOrderItem(id string, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}
	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

func (i OrderItem) Validate() error {
	if i.id == "" {
		return ErrIDIsRequired
	}
	if i.productID == "" {
		return ErrProductIDIsRequired
	}
	if i.price < 0 {
		return ErrPriceMustBePositive
	}
	if i.quantity <= 0 {
		return ErrQuantityMustBePositive
	}
	return nil
}

func (i OrderItem) ID() string        { return i.id }
func (i OrderItem) Name() string      { return i.name }
func (i OrderItem) Price() float64    { return i.price }
func (i OrderItem) ProductID() string { return i.productID }
func (i OrderItem) Quantity() int     { return i.quantity }

func (i OrderItem) Total() float64 {
	return i.price * float64(i.quantity)
}
