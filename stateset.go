package fa

import (
	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &stateSet{}

// stateSet is a set of interned state ids. Its hash is order independent, so two sets holding the
// same members always land in the same HashMap bucket, which is what collapses subset-construction
// branches that reach the same underlying states.
type stateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func newStateSet(capacity uint) *stateSet {
	return &stateSet{bits: bitset.New(capacity)}
}

func (s *stateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		s.hashCode += mix(i)
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *stateSet) Equals(other Hashable) bool {
	o, ok := other.(*stateSet)
	if !ok || o == nil {
		return false
	}
	return s.bits.Equal(o.bits)
}

func (s *stateSet) Size() int {
	return int(s.bits.Count())
}

func (s *stateSet) Has(state uint) bool {
	return s.bits.Test(state)
}

func (s *stateSet) Incr(state uint) {
	if !s.bits.Test(state) {
		s.bits.Set(state)
		s.keyChanged()
	}
}

func (s *stateSet) Decr(state uint) {
	if s.bits.Test(state) {
		s.bits.Clear(state)
		s.keyChanged()
	}
}

func (s *stateSet) Union(other *stateSet) {
	s.bits.InPlaceUnion(other.bits)
	s.keyChanged()
}

func (s *stateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// GetArray Returns the members in ascending order.
func (s *stateSet) GetArray() []uint {
	values := make([]uint, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, i)
	}
	return values
}

// Freeze Returns an independent copy with its hash computed, suitable as a map key.
func (s *stateSet) Freeze() *stateSet {
	f := &stateSet{bits: s.bits.Clone()}
	f.Hash()
	return f
}
