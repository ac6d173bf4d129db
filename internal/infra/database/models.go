package database

import (
	"github.com/DioGolang/GoCheckout/internal/domain/checkout"
	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
)

type customerRow struct {
	ID           string `db:"id" goqu:"skipupdate"`
	Name         string `db:"name"`
	Street       string `db:"street"`
	Number       int    `db:"number"`
	Zipcode      string `db:"zipcode"`
	City         string `db:"city"`
	Active       bool   `db:"active"`
	RewardPoints int    `db:"reward_points"`
}

var customerColumns = []interface{}{"id", "name", "street", "number", "zipcode", "city", "active", "reward_points"}

func toCustomerRow(c *customer.Customer) customerRow {
	row := customerRow{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if address, ok := c.Address(); ok {
		row.Street = address.Street()
		row.Number = address.Number()
		row.Zipcode = address.Zip()
		row.City = address.City()
	}
	return row
}

func (row customerRow) toEntity() (*customer.Customer, error) {
	var address customer.Address
	if row.Street != "" {
		a, err := customer.NewAddress(row.Street, row.Number, row.Zipcode, row.City)
		if err != nil {
			return nil, err
		}
		address = a
	}
	return customer.Restore(row.ID, row.Name, address, row.Active, row.RewardPoints)
}

type productRow struct {
	ID    string  `db:"id" goqu:"skipupdate"`
	Name  string  `db:"name"`
	Price float64 `db:"price"`
}

var productColumns = []interface{}{"id", "name", "price"}

func toProductRow(p *product.Product) productRow {
	return productRow{ID: p.ID(), Name: p.Name(), Price: p.Price()}
}

func (row productRow) toEntity() (*product.Product, error) {
	return product.NewProduct(row.ID, row.Name, row.Price)
}

type orderRow struct {
	ID         string  `db:"id" goqu:"skipupdate"`
	CustomerID string  `db:"customer_id"`
	Total      float64 `db:"total"`
}

var orderColumns = []interface{}{"id", "customer_id", "total"}

type orderItemRow struct {
	ID        string  `db:"id"`
	ProductID string  `db:"product_id"`
	OrderID   string  `db:"order_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
}

var orderItemColumns = []interface{}{"id", "product_id", "order_id", "name", "price", "quantity"}

func toOrderRows(o *checkout.Order) (orderRow, []interface{}) {
	items := o.Items()
	rows := make([]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, orderItemRow{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			OrderID:   o.ID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}
	return orderRow{ID: o.ID(), CustomerID: o.CustomerID(), Total: o.Total()}, rows
}

func toOrderEntity(row orderRow, itemRows []orderItemRow) (*checkout.Order, error) {
	props := checkout.OrderProps{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Items:      make([]checkout.OrderItemProps, 0, len(itemRows)),
	}
	for _, item := range itemRows {
		props.Items = append(props.Items, checkout.OrderItemProps{
			ID:        item.ID,
			Name:      item.Name,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return checkout.Factory{}.Create(props)
}
