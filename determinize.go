package fa

import (
	"fmt"
)

// DeadState is the preferred name of the absorbing state added by Determinize. If the automaton
// already uses it, primes are appended until the name is free.
const DeadState = "ø"

// IsDeterministic Returns true if the automaton has exactly one initial state, and every state has
// exactly one destination for every alphabet symbol and no epsilon transitions. Transitions from or to
// identifiers outside States also make it nondeterministic, since they cannot be totalized in place.
func (a *Automaton) IsDeterministic() bool {
	if a.initialStates.Len() != 1 {
		return false
	}
	for initial := range a.initialStates {
		if !a.states.Has(initial) {
			return false
		}
	}

	for from := range a.transitions {
		if !a.states.Has(from) {
			return false
		}
	}

	for state := range a.states {
		symbols := a.transitions[state]
		if len(symbols) != a.alphabet.Len() {
			return false
		}
		for symbol, dest := range symbols {
			if symbol == Epsilon || !a.alphabet.Has(symbol) || dest.Len() != 1 {
				return false
			}
			for to := range dest {
				if !a.states.Has(to) {
					return false
				}
			}
		}
	}
	return true
}

// Determinize Returns an equivalent deterministic automaton that is total over the alphabet, built by
// subset construction. If the receiver is already deterministic it is returned as is.
//
// States of the result are named after the sets of original states they stand for; see Set.Name.
// Missing moves are routed to a single absorbing dead state, created on first use.
func (a *Automaton) Determinize() *Automaton {
	if a.IsDeterministic() {
		return a
	}

	idx := a.index()
	final := idx.set(a.finalStates)
	alphabet := a.alphabet.Sorted()

	d := newEmpty()
	d.alphabet = a.alphabet.Clone()

	dead := deadStateName(idx)
	names := newNamer(dead)
	newState := NewHashMap[string](WithCapacity(int(idx.size())))

	// nameOf returns the output name for s and whether s was seen for the first time.
	nameOf := func(s *stateSet) (string, bool) {
		if name, ok := newState.Get(s); ok {
			return name, false
		}
		name := names.claim(idx.resolve(s).Name())
		newState.Set(s.Freeze(), name)
		return name, true
	}

	hasDead := false
	addDead := func() {
		if hasDead {
			return
		}
		d.states.Add(dead)
		for _, symbol := range alphabet {
			d.AddTransition(dead, symbol, dead)
		}
		hasDead = true
	}

	initialSet := idx.closure(idx.set(a.initialStates), true)
	if initialSet.Size() == 0 {
		addDead()
		d.initialStates.Add(dead)
		return d
	}

	initialName, _ := nameOf(initialSet)
	d.initialStates.Add(initialName)

	worklist := []*stateSet{initialSet}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		name, _ := newState.Get(current)
		d.states.Add(name)
		if current.bits.IntersectionCardinality(final.bits) > 0 {
			d.finalStates.Add(name)
		}

		for _, symbol := range alphabet {
			next := idx.closure(idx.move(current, symbol), true)
			if next.Size() == 0 {
				addDead()
				d.AddTransition(name, symbol, dead)
				continue
			}

			nextName, isNew := nameOf(next)
			d.AddTransition(name, symbol, nextName)
			if isNew {
				worklist = append(worklist, next)
			}
		}
	}
	return d
}

func deadStateName(idx *stateIndex) string {
	name := DeadState
	for {
		if _, taken := idx.id(name); !taken {
			return name
		}
		name += "'"
	}
}

// namer hands out unique output state names. Composite names are display labels, so two different
// underlying sets can produce the same label when identifiers contain commas; later claims get a
// numeric suffix.
type namer struct {
	taken Set
}

func newNamer(reserved ...string) *namer {
	return &namer{taken: NewSet(reserved...)}
}

func (n *namer) claim(name string) string {
	unique := name
	for i := 1; n.taken.Has(unique); i++ {
		unique = fmt.Sprintf("%s#%d", name, i)
	}
	n.taken.Add(unique)
	return unique
}
