package inventory

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRestock(t *testing.T) {
	name := writeInventory(t, "Country,Code,Product,Cost,Quantity\nUS,A1,Runner,59.99,10\nFR,B2,Trail,79.5,3\nUK,C3,Court,45,7")

	s := NewStore()
	if _, err := Load(name, s); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	lowest, _ := s.Lowest()
	if lowest.Code != "B2" {
		t.Fatalf("Lowest() = %v, want B2", lowest)
	}

	if err := Restock(name, lowest, 5); err != nil {
		t.Fatalf("Restock() failed: %v", err)
	}
	if lowest.Quantity != 8 {
		t.Errorf("Quantity after restock = %v, want 8", lowest.Quantity)
	}

	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	want := "Country,Code,Product,Cost,Quantity\nUS,A1,Runner,59.99,10\nFR,B2,Trail,79.5,3\nUK,C3,Court,45,7\nFR,B2,Trail,79.5,8"
	if string(content) != want {
		t.Errorf("file content = %q, want %q", content, want)
	}
}

func TestRestock_Negative(t *testing.T) {
	name := writeInventory(t, "header")
	r := rec("US", "A1", "Runner", 59.99, 10)
	if err := Restock(name, r, -1); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Restock(-1) error = %v, want ErrMalformedInput", err)
	}
	if r.Quantity != 10 {
		t.Errorf("Quantity = %v, want unchanged 10", r.Quantity)
	}
}

func TestRestock_WriteFailure(t *testing.T) {
	// a directory cannot be opened for writing.
	dir := filepath.Join(t.TempDir(), "inventory.txt")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	r := rec("US", "A1", "Runner", 59.99, 10)
	if err := Restock(dir, r, 5); err == nil {
		t.Errorf("Restock() to a directory succeeded, want an error")
	}
	if r.Quantity != 10 {
		t.Errorf("Quantity = %v, want unchanged 10 after a failed write", r.Quantity)
	}
}

func TestRestock_Overflow(t *testing.T) {
	name := writeInventory(t, "header")
	r := rec("US", "A1", "Runner", 59.99, math.MaxInt64)
	if err := Restock(name, r, 1); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Restock() past MaxInt64 error = %v, want ErrMalformedInput", err)
	}
	if r.Quantity != math.MaxInt64 {
		t.Errorf("Quantity = %v, want unchanged %d", r.Quantity, int64(math.MaxInt64))
	}
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "header" {
		t.Errorf("file was modified on overflow: %q", content)
	}

	// reaching exactly MaxInt64 is fine.
	r.Quantity = math.MaxInt64 - 1
	if err := Restock(name, r, 1); err != nil {
		t.Errorf("Restock() up to MaxInt64 failed: %v", err)
	}
}
