package product

// Input

type CreateInput struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type FindInput struct {
	ID string `json:"id"`
}

type ListInput struct{}

type UpdateInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// IncreasePricesInput targets the listed products, or every product when IDs
// is empty.
type IncreasePricesInput struct {
	Percentage float64  `json:"percentage"`
	IDs        []string `json:"ids,omitempty"`
}

// Output

type Output struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ListOutput struct {
	Products []Output `json:"products"`
}
