package inventory

import (
	"fmt"
	"math"
)

// Restock adds quantity to r and appends the updated record to the inventory file.
//
// r is only changed once the line is written, so that the store never
// disagrees with the file.
func Restock(filename string, r *Record, add Quantity) error {
	if add.IsNegative() {
		return fmt.Errorf("%w: cannot restock a negative quantity %v", ErrMalformedInput, add)
	}
	if r.Quantity > math.MaxInt64-add {
		return fmt.Errorf("%w: adding %v to %v overflows the quantity", ErrMalformedInput, add, r.Quantity)
	}
	updated := *r
	updated.Quantity = r.Quantity.Add(add)
	if err := AppendRecord(filename, &updated); err != nil {
		return err
	}
	r.Quantity = updated.Quantity
	return nil
}
