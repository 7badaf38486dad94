package fa

import (
	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a deterministic automaton compiled to a dense transition table, for repeated
// membership tests without re-indexing the relation on every call.
type RunAutomaton struct {
	names       []string
	symbols     map[string]int
	transitions []int // states x symbols, -1 when there is no transition
	accept      *bitset.BitSet
	initial     int
}

// Compile Determinizes the automaton when needed and builds its run table.
func (a *Automaton) Compile() *RunAutomaton {
	d := a.Determinize()
	idx := d.index()
	alphabet := d.alphabet.Sorted()

	r := &RunAutomaton{
		names:       idx.names,
		symbols:     make(map[string]int, len(alphabet)),
		transitions: make([]int, len(idx.names)*len(alphabet)),
		accept:      bitset.New(idx.size()),
		initial:     -1,
	}
	for j, symbol := range alphabet {
		r.symbols[symbol] = j
	}

	for state := range idx.names {
		row := state * len(alphabet)
		for j, symbol := range alphabet {
			r.transitions[row+j] = -1
			if targets := idx.moves[state][symbol]; len(targets) > 0 {
				r.transitions[row+j] = int(targets[0])
			}
		}
	}
	for final := range d.finalStates {
		if id, ok := idx.id(final); ok {
			r.accept.Set(id)
		}
	}
	for initial := range d.initialStates {
		id, _ := idx.id(initial)
		r.initial = int(id)
	}
	return r
}

// GetSize Returns the number of states.
func (r *RunAutomaton) GetSize() int {
	return len(r.names)
}

// GetInitialState Returns the initial state, or -1 for an automaton without one.
func (r *RunAutomaton) GetInitialState() int {
	return r.initial
}

// StateName Returns the identifier of state in the compiled automaton, or "" for an unknown state.
func (r *RunAutomaton) StateName(state int) string {
	if state < 0 || state >= len(r.names) {
		return ""
	}
	return r.names[state]
}

// IsAccept Returns true if the given state is accepting.
func (r *RunAutomaton) IsAccept(state int) bool {
	return state >= 0 && state < len(r.names) && r.accept.Test(uint(state))
}

// Step Returns the state reached from state on symbol, or -1 if there is none.
func (r *RunAutomaton) Step(state int, symbol string) int {
	j, ok := r.symbols[symbol]
	if !ok || state < 0 || state >= len(r.names) {
		return -1
	}
	return r.transitions[state*len(r.symbols)+j]
}

// Run Returns true if the symbol sequence is accepted.
func (r *RunAutomaton) Run(symbols []string) bool {
	p := r.initial
	for _, symbol := range symbols {
		p = r.Step(p, symbol)
		if p == -1 {
			return false
		}
	}
	return r.IsAccept(p)
}
