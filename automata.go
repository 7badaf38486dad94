package fa

import (
	"strconv"
)

// MakeEmpty Returns a new (deterministic) automaton with the empty language.
func MakeEmpty(alphabet ...string) *Automaton {
	a := New([]string{"0"}, alphabet, nil, []string{"0"}, nil)
	for _, symbol := range a.alphabet.Sorted() {
		a.AddTransition("0", symbol, "0")
	}
	return a
}

// MakeEmptyString Returns a new (deterministic) automaton that accepts only the empty string.
func MakeEmptyString(alphabet ...string) *Automaton {
	a := New([]string{"0", "1"}, alphabet, nil, []string{"0"}, []string{"0"})
	for _, symbol := range a.alphabet.Sorted() {
		a.AddTransition("0", symbol, "1")
		a.AddTransition("1", symbol, "1")
	}
	return a
}

// MakeAnyString Returns a new (deterministic) automaton that accepts all strings over alphabet.
func MakeAnyString(alphabet ...string) *Automaton {
	a := New([]string{"0"}, alphabet, nil, []string{"0"}, []string{"0"})
	for _, symbol := range a.alphabet.Sorted() {
		a.AddTransition("0", symbol, "0")
	}
	return a
}

// MakeString Returns a new automaton that accepts exactly the given symbol sequence. The alphabet
// is the set of symbols used; the automaton is not total.
func MakeString(symbols ...string) *Automaton {
	states := make([]string, len(symbols)+1)
	for i := range states {
		states[i] = strconv.Itoa(i)
	}

	a := New(states, symbols, nil, states[:1], states[len(symbols):])
	for i, symbol := range symbols {
		a.AddTransition(states[i], symbol, states[i+1])
	}
	return a
}
