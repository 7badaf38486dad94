package fa

// closure Returns the states reachable from seed by zero or more epsilon moves. With
// includeSources false the walk starts at the epsilon successors of seed, so a seed is only part
// of the result if an epsilon path of length one or more leads back to it.
//
// Each state is expanded at most once, which keeps the walk finite on epsilon cycles.
func (idx *stateIndex) closure(seed *stateSet, includeSources bool) *stateSet {
	visited := newStateSet(idx.size())

	var stack []uint
	for _, id := range seed.GetArray() {
		if includeSources {
			stack = append(stack, id)
		} else {
			stack = append(stack, idx.eps[id]...)
		}
	}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(state) {
			continue
		}
		visited.Incr(state)

		for _, to := range idx.eps[state] {
			if !visited.Has(to) {
				stack = append(stack, to)
			}
		}
	}
	return visited
}

// EpsilonClosure Returns the set of states reachable from states using only epsilon transitions.
// When includeSources is true every seed state is in the result, known to the automaton or not.
// When it is false the result holds the states reached by one or more epsilon moves, so a seed is
// still returned if an epsilon cycle leads back to it.
func (a *Automaton) EpsilonClosure(states Set, includeSources bool) Set {
	idx := a.index(states.Sorted()...)
	return idx.resolve(idx.closure(idx.set(states), includeSources))
}

// closureCache memoizes single-state closures for one indexed view.
type closureCache struct {
	idx    *stateIndex
	states []*stateSet
}

func newClosureCache(idx *stateIndex) *closureCache {
	return &closureCache{idx: idx, states: make([]*stateSet, idx.size())}
}

func (c *closureCache) of(state uint) *stateSet {
	if cached := c.states[state]; cached != nil {
		return cached
	}
	seed := newStateSet(c.idx.size())
	seed.Incr(state)
	closure := c.idx.closure(seed, true)
	c.states[state] = closure
	return closure
}
