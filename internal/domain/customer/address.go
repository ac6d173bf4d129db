package customer

import "fmt"

// Address is a value object; two addresses with the same fields are equal.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip string, city string) (Address, error) {
	a := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error {
	if a.street == "" {
		return ErrStreetRequired
	}
	if a.number == 0 {
		return ErrNumberRequired
	}
	if a.zip == "" {
		return ErrZipRequired
	}
	if a.city == "" {
		return ErrCityRequired
	}
	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
