package product

// Interface is what the factory hands out: every product flavor can be
// renamed and repriced.
type Interface interface {
	ID() string
	Name() string
	Price() float64
	ChangeName(name string) error
	ChangePrice(price float64) error
}

type Product struct {
	id    string
	name  string
	price float64
}

func NewProduct(id string, name string, price float64) (*Product, error) {
	p := &Product{
		id:    id,
		name:  name,
		price: price,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p.id == "" {
		return ErrIDIsRequired
	}
	if p.name == "" {
		return ErrNameIsRequired
	}
	if p.price < 0 {
		return ErrPriceMustBePositive
	}
	return nil
}

func (p *Product) ChangeName(name string) error {
	previous := p.name
	p.name = name
	if err := p.Validate(); err != nil {
		p.name = previous
		return err
	}
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	previous := p.price
	p.price = price
	if err := p.Validate(); err != nil {
		p.price = previous
		return err
	}
	return nil
}

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() float64 {
	return p.price
}

// ProductB is the premium flavor: its listed price is twice the base price.
type ProductB struct {
	Product
}

func NewProductB(id string, name string, price float64) (*ProductB, error) {
	p, err := NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}
	return &ProductB{Product: *p}, nil
}

func (p *ProductB) Price() float64 {
	return p.price * 2
}

var (
	_ Interface = (*Product)(nil)
	_ Interface = (*ProductB)(nil)
)
