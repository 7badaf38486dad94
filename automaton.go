package fa

// Epsilon The reserved empty symbol. A transition on Epsilon is consumed without reading input;
// it is never a member of the alphabet.
const Epsilon = ""

// Transitions Literal form of a transition relation: state -> symbol -> destination states.
// Destination order carries no meaning.
type Transitions map[string]map[string][]string

// Automaton Represents a finite automaton over string states and string symbols. The transition
// relation maps (state, symbol) to a set of states, so one automaton value models deterministic and
// nondeterministic automata alike, with Epsilon keys for lambda moves.
//
// The relation is pruned eagerly: a symbol with no destinations is removed, and a state with no
// symbols is removed. References to states outside States are tolerated and treated as unreachable.
//
// An Automaton is not safe for concurrent mutation; concurrent readers are fine.
type Automaton struct {
	states        Set
	alphabet      Set
	transitions   map[string]map[string]Set
	initialStates Set
	finalStates   Set
}

// New Builds an automaton from explicit component lists. Epsilon is dropped from the alphabet.
func New(states, alphabet []string, transitions Transitions, initialStates, finalStates []string) *Automaton {
	a := &Automaton{}
	a.SetStates(states...)
	a.SetAlphabet(alphabet...)
	a.SetTransitions(transitions)
	a.SetInitialStates(initialStates...)
	a.SetFinalStates(finalStates...)
	return a
}

func newEmpty() *Automaton {
	return &Automaton{
		states:        NewSet(),
		alphabet:      NewSet(),
		transitions:   make(map[string]map[string]Set),
		initialStates: NewSet(),
		finalStates:   NewSet(),
	}
}

// SetStates Replaces the state set.
func (a *Automaton) SetStates(states ...string) {
	a.states = NewSet(states...)
}

// SetAlphabet Replaces the alphabet. Epsilon is never kept as a member.
func (a *Automaton) SetAlphabet(symbols ...string) {
	a.alphabet = NewSet(symbols...)
	a.alphabet.Remove(Epsilon)
}

// SetInitialStates Replaces the initial states.
func (a *Automaton) SetInitialStates(states ...string) {
	a.initialStates = NewSet(states...)
}

// SetFinalStates Replaces the final (accepting) states.
func (a *Automaton) SetFinalStates(states ...string) {
	a.finalStates = NewSet(states...)
}

// SetTransitions Replaces the whole transition relation. Empty destination lists are dropped.
func (a *Automaton) SetTransitions(transitions Transitions) {
	a.transitions = make(map[string]map[string]Set, len(transitions))
	for from, symbols := range transitions {
		for symbol, to := range symbols {
			a.AddTransition(from, symbol, to...)
		}
	}
}

// States Returns a copy of the state set.
func (a *Automaton) States() Set {
	return a.states.Clone()
}

// Alphabet Returns a copy of the alphabet.
func (a *Automaton) Alphabet() Set {
	return a.alphabet.Clone()
}

// InitialStates Returns a copy of the initial states.
func (a *Automaton) InitialStates() Set {
	return a.initialStates.Clone()
}

// FinalStates Returns a copy of the final states.
func (a *Automaton) FinalStates() Set {
	return a.finalStates.Clone()
}

// Transitions Returns a copy of the relation with sorted destination lists.
func (a *Automaton) Transitions() Transitions {
	out := make(Transitions, len(a.transitions))
	for from, symbols := range a.transitions {
		m := make(map[string][]string, len(symbols))
		for symbol, to := range symbols {
			m[symbol] = to.Sorted()
		}
		out[from] = m
	}
	return out
}

// HasTransition Returns true if every state in to is a destination of (from, symbol).
func (a *Automaton) HasTransition(from, symbol string, to ...string) bool {
	symbols, ok := a.transitions[from]
	if !ok {
		return false
	}
	dest, ok := symbols[symbol]
	if !ok {
		return false
	}
	return dest.HasAll(to...)
}

// AddTransition Merges to into the destinations of (from, symbol), creating entries as needed.
func (a *Automaton) AddTransition(from, symbol string, to ...string) {
	if len(to) == 0 || a.HasTransition(from, symbol, to...) {
		return
	}

	symbols, ok := a.transitions[from]
	if !ok {
		symbols = make(map[string]Set)
		a.transitions[from] = symbols
	}
	dest, ok := symbols[symbol]
	if !ok {
		dest = NewSet()
		symbols[symbol] = dest
	}
	dest.Add(to...)
}

// RemoveTransition Removes the given destinations from (from, symbol). The symbol entry is pruned when
// it becomes empty and the state entry is pruned when it has no symbols left. Unknown keys are ignored.
func (a *Automaton) RemoveTransition(from, symbol string, to ...string) {
	symbols, ok := a.transitions[from]
	if !ok {
		return
	}
	dest, ok := symbols[symbol]
	if !ok {
		return
	}

	dest.Remove(to...)
	if dest.Len() == 0 {
		delete(symbols, symbol)
	}
	if len(symbols) == 0 {
		delete(a.transitions, from)
	}
}

// Destinations Returns a copy of the destinations of (from, symbol); empty when there is no transition.
func (a *Automaton) Destinations(from, symbol string) Set {
	if dest, ok := a.transitions[from][symbol]; ok {
		return dest.Clone()
	}
	return NewSet()
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return a.states.Len()
}

// GetNumTransitions How many (state, symbol, destination) triples the relation holds.
func (a *Automaton) GetNumTransitions() int {
	n := 0
	for _, symbols := range a.transitions {
		for _, dest := range symbols {
			n += dest.Len()
		}
	}
	return n
}

// IsAccept Returns true if this state is a final state.
func (a *Automaton) IsAccept(state string) bool {
	return a.finalStates.Has(state)
}

// Clone Returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		states:        a.states.Clone(),
		alphabet:      a.alphabet.Clone(),
		transitions:   make(map[string]map[string]Set, len(a.transitions)),
		initialStates: a.initialStates.Clone(),
		finalStates:   a.finalStates.Clone(),
	}
	for from, symbols := range a.transitions {
		m := make(map[string]Set, len(symbols))
		for symbol, dest := range symbols {
			m[symbol] = dest.Clone()
		}
		c.transitions[from] = m
	}
	return c
}

func (a *Automaton) hasFinalState(states Set) bool {
	return a.finalStates.HasAny(states)
}

func (a *Automaton) hasInitialState(states Set) bool {
	return a.initialStates.HasAny(states)
}
