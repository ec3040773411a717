package cart

import "vitrine-be/internal/catalog"

// Store holds the session's cart lines in insertion order. Each line is a
// value copy of the catalog product at the time it was added; the same
// product may appear on multiple lines. Stock is informational only and is
// never decremented here.
//
// Store is not safe for concurrent use; the owning session serializes
// access.
type Store struct {
	lines []catalog.Product
}

func NewStore() *Store {
	return &Store{}
}

// Add appends a product to the end of the cart.
func (s *Store) Add(p catalog.Product) {
	s.lines = append(s.lines, p)
}

// RemoveAt removes the line at the given position, preserving the relative
// order of the remaining lines.
func (s *Store) RemoveAt(index int) error {
	if index < 0 || index >= len(s.lines) {
		return ErrIndexOutOfRange
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []catalog.Product {
	out := make([]catalog.Product, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	return len(s.lines)
}

// Clear empties the cart. Called on order completion.
func (s *Store) Clear() {
	s.lines = nil
}
