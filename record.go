package inventory

import "fmt"

// Record is one stock line item of the inventory.
type Record struct {
	Country  string
	Code     string // identifier, not guaranteed unique
	Product  string
	Cost     Money
	Quantity Quantity
}

// NewRecord returns a new record.
func NewRecord(country, code, product string, cost Money, quantity Quantity) *Record {
	return &Record{
		Country:  country,
		Code:     code,
		Product:  product,
		Cost:     cost,
		Quantity: quantity,
	}
}

// Value is the stock value of the record, cost times quantity.
func (r *Record) Value() Money { return r.Cost.Mul(r.Quantity) }

// String returns the short human form "code - product (country)".
func (r *Record) String() string {
	return fmt.Sprintf("%s - %s (%s)", r.Code, r.Product, r.Country)
}
