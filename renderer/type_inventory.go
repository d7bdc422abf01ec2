package renderer

import "github.com/etnz/inventory"

// Inventory is the rendering view of a store.
// Numbers are kept in their exact types so that templates can use their
// String methods.
type Inventory struct {
	// Currency used to display costs and values, may be empty.
	Currency string
	// Items in store order.
	Items []Item
}

// Item is a single row of the inventory tables.
type Item struct {
	Code     string
	Product  string
	Country  string
	Cost     inventory.Money
	Quantity inventory.Quantity
	Value    inventory.Money
}

// NewInventory creates the rendering view of all the records in s.
func NewInventory(s *inventory.Store, currency string) *Inventory {
	inv := &Inventory{Currency: currency}
	for r := range s.Records() {
		inv.Items = append(inv.Items, Item{
			Code:     r.Code,
			Product:  r.Product,
			Country:  r.Country,
			Cost:     r.Cost.WithCurrency(currency),
			Quantity: r.Quantity,
			Value:    r.Value().WithCurrency(currency),
		})
	}
	return inv
}
