package order

// Input

type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceInput struct {
	CustomerID string      `json:"customer_id"`
	Items      []ItemInput `json:"items"`
}

type FindInput struct {
	ID string `json:"id"`
}

type ListInput struct{}

// UpdateInput replaces the items of an order.
type UpdateInput struct {
	ID    string      `json:"id"`
	Items []ItemInput `json:"items"`
}

// Output

type ItemOutput struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type Output struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	Items      []ItemOutput `json:"items"`
	Total      float64      `json:"total"`
}

type PlaceOutput struct {
	Output
	RewardPoints int `json:"reward_points"`
}

type ListOutput struct {
	Orders []Output `json:"orders"`
	Total  float64  `json:"total"`
}
