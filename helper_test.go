package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// moneyEqual compares Money by value, ignoring the display currency.
var moneyEqual = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// rec is a helper for test to create a record from constants.
func rec(country, code, product string, cost float64, quantity int64) *Record {
	return NewRecord(country, code, product, M(cost, ""), Quantity(quantity))
}

// records collects the store content.
func records(s *Store) []*Record {
	var out []*Record
	for r := range s.Records() {
		out = append(out, r)
	}
	return out
}

// writeInventory writes content into a new inventory file and returns its path.
func writeInventory(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "inventory.txt")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write inventory file: %v", err)
	}
	return name
}
