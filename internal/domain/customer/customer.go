package customer

type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints int
}

func NewCustomer(id string, name string) (*Customer, error) {
	c := &Customer{
		id:   id,
		name: name,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Restore rebuilds a customer from stored state. The address may be zero.
func Restore(id, name string, address Address, active bool, rewardPoints int) (*Customer, error) {
	c := &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Validate() error {
	if c.id == "" {
		return ErrIDIsRequired
	}
	if c.name == "" {
		return ErrNameIsRequired
	}
	if c.rewardPoints < 0 {
		return ErrRewardPoints
	}
	return nil
}

func (c *Customer) ChangeName(name string) error {
	previous := c.name
	c.name = name
	if err := c.Validate(); err != nil {
		c.name = previous
		return err
	}
	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressIsMandatory
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrRewardPoints
	}
	c.rewardPoints += points
	return nil
}

func (c *Customer) ID() string {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Address returns the customer's address and whether one was ever set.
func (c *Customer) Address() (Address, bool) {
	return c.address, !c.address.IsZero()
}

func (c *Customer) IsActive() bool {
	return c.active
}

func (c *Customer) RewardPoints() int {
	return c.rewardPoints
}
