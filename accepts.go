package fa

// configuration pairs a current state with the unconsumed tail of the input. The tail is always a
// suffix of the same input, so its length identifies it.
type configuration struct {
	state     uint
	remaining int
}

// Accepts Decides whether the automaton accepts the symbol sequence. Symbols outside the alphabet
// are allowed; they simply have no transitions.
//
// Nondeterministic choices and epsilon moves are explored depth first. Every configuration is
// pushed at most once, so the search is bounded by states x (len(symbols)+1) even with epsilon
// cycles. The search stops at the first accepting configuration.
func (a *Automaton) Accepts(symbols []string) bool {
	idx := a.index()
	closures := newClosureCache(idx)
	final := idx.set(a.finalStates)

	var stack []configuration
	seen := make(map[configuration]struct{})
	push := func(c configuration) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		stack = append(stack, c)
	}

	for _, initial := range a.initialStates.Sorted() {
		id, _ := idx.id(initial)
		for _, state := range closures.of(id).GetArray() {
			push(configuration{state: state, remaining: len(symbols)})
		}
	}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.remaining == 0 {
			if closures.of(c.state).bits.IntersectionCardinality(final.bits) > 0 {
				return true
			}
			continue
		}

		moves := idx.moves[c.state]
		if len(moves) == 0 {
			continue
		}
		symbol := symbols[len(symbols)-c.remaining]
		for _, to := range moves[symbol] {
			for _, state := range closures.of(to).GetArray() {
				push(configuration{state: state, remaining: c.remaining - 1})
			}
		}
	}
	return false
}

// Run Reports whether a accepts input, reading one symbol per rune.
func Run(a *Automaton, input string) bool {
	return a.Accepts(Symbols(input))
}

// Symbols Splits s into one symbol per rune.
func Symbols(s string) []string {
	symbols := make([]string, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return symbols
}
