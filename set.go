package fa

import (
	"slices"
	"strings"
)

// Set is an unordered set of state identifiers or symbols.
type Set map[string]struct{}

// NewSet Returns a set holding the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

func (s Set) Remove(items ...string) {
	for _, item := range items {
		delete(s, item)
	}
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// HasAll Returns true if every item is in the set. An empty argument list is trivially contained.
func (s Set) HasAll(items ...string) bool {
	for _, item := range items {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// HasAny Returns true if at least one member of other is in s.
func (s Set) HasAny(other Set) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for item := range small {
		if large.Has(item) {
			return true
		}
	}
	return false
}

// Sorted Returns the members in ascending order.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

// Name Returns the canonical composite name of the set: the sorted members joined by commas.
// It is a display label; two sets whose members contain commas may share a name.
func (s Set) Name() string {
	return strings.Join(s.Sorted(), ",")
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for item := range s {
		c[item] = struct{}{}
	}
	return c
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}
