package fa

import (
	"slices"
)

// stateIndex is an interned view of the transition relation. Every identifier the automaton
// mentions (states, initial and final states, transition endpoints) gets a dense id, so state
// sets can be bitsets. Ids follow the sorted order of the names.
type stateIndex struct {
	names []string
	ids   map[string]uint
	eps   [][]uint
	moves []map[string][]uint
}

func (a *Automaton) index(extra ...string) *stateIndex {
	seen := NewSet(extra...)
	seen.Add(a.states.Sorted()...)
	seen.Add(a.initialStates.Sorted()...)
	seen.Add(a.finalStates.Sorted()...)
	for from, symbols := range a.transitions {
		seen.Add(from)
		for _, dest := range symbols {
			for to := range dest {
				seen.Add(to)
			}
		}
	}

	idx := &stateIndex{
		names: seen.Sorted(),
		ids:   make(map[string]uint, seen.Len()),
	}
	for i, name := range idx.names {
		idx.ids[name] = uint(i)
	}

	idx.eps = make([][]uint, len(idx.names))
	idx.moves = make([]map[string][]uint, len(idx.names))
	for from, symbols := range a.transitions {
		id := idx.ids[from]
		for symbol, dest := range symbols {
			targets := make([]uint, 0, dest.Len())
			for to := range dest {
				targets = append(targets, idx.ids[to])
			}
			slices.Sort(targets)

			if symbol == Epsilon {
				idx.eps[id] = targets
				continue
			}
			if idx.moves[id] == nil {
				idx.moves[id] = make(map[string][]uint, len(symbols))
			}
			idx.moves[id][symbol] = targets
		}
	}
	return idx
}

func (idx *stateIndex) size() uint {
	return uint(len(idx.names))
}

func (idx *stateIndex) id(name string) (uint, bool) {
	id, ok := idx.ids[name]
	return id, ok
}

// set Interns the named states into a stateSet. Names unknown to the index are skipped.
func (idx *stateIndex) set(names Set) *stateSet {
	s := newStateSet(idx.size())
	for name := range names {
		if id, ok := idx.ids[name]; ok {
			s.Incr(id)
		}
	}
	return s
}

// resolve Maps a stateSet back to identifiers.
func (idx *stateIndex) resolve(s *stateSet) Set {
	out := make(Set, s.Size())
	for _, id := range s.GetArray() {
		out.Add(idx.names[id])
	}
	return out
}

// move Returns the union of symbol-successors of every member of s.
func (idx *stateIndex) move(s *stateSet, symbol string) *stateSet {
	out := newStateSet(idx.size())
	for _, id := range s.GetArray() {
		for _, to := range idx.moves[id][symbol] {
			out.Incr(to)
		}
	}
	return out
}

// reachable Returns every state reachable from seed over any transition, seed included.
func (idx *stateIndex) reachable(seed *stateSet) *stateSet {
	visited := newStateSet(idx.size())
	stack := seed.GetArray()
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(state) {
			continue
		}
		visited.Incr(state)

		stack = append(stack, idx.eps[state]...)
		for _, targets := range idx.moves[state] {
			for _, to := range targets {
				if !visited.Has(to) {
					stack = append(stack, to)
				}
			}
		}
	}
	return visited
}
