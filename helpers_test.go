package fa

import (
	"math/rand"
	"strconv"
)

// sampleAutomaton accepts (aa|bb)* through an epsilon cycle between 1 and 3.
func sampleAutomaton() *Automaton {
	return New(
		[]string{"1", "2", "3", "4"},
		[]string{"a", "b"},
		Transitions{
			"1": {"a": {"2"}, "": {"3"}},
			"2": {"a": {"1"}},
			"3": {"": {"1"}, "b": {"4"}},
			"4": {"b": {"3"}},
		},
		[]string{"1", "3"},
		[]string{"1", "3"},
	)
}

// words Returns every sequence over alphabet of length at most n.
func words(alphabet []string, n int) [][]string {
	out := [][]string{{}}
	frontier := [][]string{{}}
	for i := 0; i < n; i++ {
		var next [][]string
		for _, w := range frontier {
			for _, symbol := range alphabet {
				word := append(append([]string{}, w...), symbol)
				next = append(next, word)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// randomAutomaton builds a nondeterministic automaton with epsilon moves over {a, b}.
func randomAutomaton(r *rand.Rand, numStates int) *Automaton {
	states := make([]string, numStates)
	for i := range states {
		states[i] = "q" + strconv.Itoa(i)
	}
	symbols := []string{"a", "b", Epsilon}

	a := New(states, []string{"a", "b"}, nil, nil, nil)
	for _, from := range states {
		for _, symbol := range symbols {
			for _, to := range states {
				threshold := 0.25
				if symbol == Epsilon {
					threshold = 0.1
				}
				if r.Float64() < threshold {
					a.AddTransition(from, symbol, to)
				}
			}
		}
	}

	var initial, final []string
	for _, state := range states {
		if r.Float64() < 0.3 {
			initial = append(initial, state)
		}
		if r.Float64() < 0.3 {
			final = append(final, state)
		}
	}
	if len(initial) == 0 {
		initial = states[:1]
	}
	a.SetInitialStates(initial...)
	a.SetFinalStates(final...)
	return a
}
