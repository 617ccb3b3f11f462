package anfgo

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// rootSet tracks root membership as a 32-bit Roaring Bitmap over node slots.
// It wraps the official roaring implementation.
type rootSet struct {
	rb *roaring.Bitmap
}

// newRootSet creates a new empty root set.
func newRootSet() *rootSet {
	return &rootSet{
		rb: roaring.New(),
	}
}

// Add adds a node slot to the set.
func (s *rootSet) Add(slot uint32) {
	s.rb.Add(slot)
}

// Remove removes a node slot from the set.
func (s *rootSet) Remove(slot uint32) {
	s.rb.Remove(slot)
}

// Contains checks if a node slot is in the set.
func (s *rootSet) Contains(slot uint32) bool {
	return s.rb.Contains(slot)
}

// Cardinality returns the number of slots in the set.
func (s *rootSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *rootSet) Clone() *rootSet {
	return &rootSet{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending slot order.
func (s *rootSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
