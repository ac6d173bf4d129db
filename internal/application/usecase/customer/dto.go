package customer

// Input

type AddressInput struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type CreateInput struct {
	Name    string        `json:"name"`
	Address *AddressInput `json:"address,omitempty"`
}

type FindInput struct {
	ID string `json:"id"`
}

type ListInput struct{}

// UpdateInput replaces the mutable state of a customer. A nil Address keeps
// the current one.
type UpdateInput struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Address *AddressInput `json:"address,omitempty"`
	Active  bool          `json:"active"`
}

// Output

type AddressOutput struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type Output struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Address      *AddressOutput `json:"address,omitempty"`
	Active       bool           `json:"active"`
	RewardPoints int            `json:"reward_points"`
}

type ListOutput struct {
	Customers []Output `json:"customers"`
}
