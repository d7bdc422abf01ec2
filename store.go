package inventory

import "iter"

// Store holds all the records of a session in insertion order.
//
// It is append-only: records are never removed, only their quantity can change
// through a restock.
type Store struct {
	records []*Record
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Append adds r at the end of the store.
func (s *Store) Append(r *Record) { s.records = append(s.records, r) }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records iterates over the records in insertion order.
func (s *Store) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Lowest returns the first record with the smallest quantity.
func (s *Store) Lowest() (*Record, bool) {
	return s.first(func(r, best *Record) bool { return r.Quantity.LessThan(best.Quantity) })
}

// Highest returns the first record with the largest quantity.
func (s *Store) Highest() (*Record, bool) {
	return s.first(func(r, best *Record) bool { return r.Quantity.GreaterThan(best.Quantity) })
}

// first returns the record that is strictly better than all the ones before it.
// Strict comparison keeps the earliest record on ties.
func (s *Store) first(better func(r, best *Record) bool) (*Record, bool) {
	var best *Record
	for r := range s.Records() {
		if best == nil || better(r, best) {
			best = r
		}
	}
	return best, best != nil
}

// Find returns the first record whose code is exactly code.
func (s *Store) Find(code string) (*Record, bool) {
	for r := range s.Records() {
		if r.Code == code {
			return r, true
		}
	}
	return nil, false
}
