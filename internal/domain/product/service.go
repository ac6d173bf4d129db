package product

// Service holds the product rules that span several products.
type Service struct{}

// IncreasePrice raises every price by percentage percent. A negative
// percentage lowers prices; a result below zero is rejected and leaves that
// product untouched.
func (Service) IncreasePrice(products []*Product, percentage float64) error {
	for _, p := range products {
		if err := p.ChangePrice(p.Price()*percentage/100 + p.Price()); err != nil {
			return err
		}
	}
	return nil
}
