package checkout

type OrderItemProps struct {
	ID        string
	Name      string
	ProductID string
	Quantity  int
	Price     float64
}

type OrderProps struct {
	ID         string
	CustomerID string
	Items      []OrderItemProps
}

type Factory struct{}

func (Factory) Create(props OrderProps) (*Order, error) {
	items := make([]OrderItem, 0, len(props.Items))
	for _, p := range props.Items {
		item, err := NewOrderItem(p.ID, p.Name, p.Price, p.ProductID, p.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return NewOrder(props.ID, props.CustomerID, items)
}
