package fa

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// EpsilonGlyph is how epsilon transitions are labelled in graph exports.
const EpsilonGlyph = "λ"

type edge struct {
	from, to string
}

// DOT Renders the automaton as Graphviz source, laid out left to right. Final states are double
// circles, initial states are dashed, and parallel transitions between the same pair of states share
// one edge with a comma-joined label. The output is sorted and byte-stable.
func (a *Automaton) DOT() string {
	var buf bytes.Buffer
	buf.WriteString(`digraph finite_state_machine {
  fontname="Helvetica,Arial,sans-serif"
  node [fontname="Helvetica,Arial,sans-serif"]
  edge [fontname="Helvetica,Arial,sans-serif"]
  rankdir=LR;
`)

	var finalOnly, both, initialOnly, plain []string
	for _, state := range a.nodes() {
		initial, final := a.initialStates.Has(state), a.finalStates.Has(state)
		switch {
		case initial && final:
			both = append(both, state)
		case final:
			finalOnly = append(finalOnly, state)
		case initial:
			initialOnly = append(initialOnly, state)
		default:
			plain = append(plain, state)
		}
	}
	writeNodes(&buf, "doublecircle", "solid", finalOnly)
	writeNodes(&buf, "doublecircle", "dashed", both)
	writeNodes(&buf, "circle", "dashed", initialOnly)
	writeNodes(&buf, "circle", "solid", plain)

	labels := make(map[edge][]string)
	for from, symbols := range a.transitions {
		for symbol, dest := range symbols {
			if symbol == Epsilon {
				symbol = EpsilonGlyph
			}
			for to := range dest {
				e := edge{from: from, to: to}
				labels[e] = append(labels[e], symbol)
			}
		}
	}

	edges := make([]edge, 0, len(labels))
	for e := range labels {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(x, y edge) int {
		if c := strings.Compare(x.from, y.from); c != 0 {
			return c
		}
		return strings.Compare(x.to, y.to)
	})

	for _, e := range edges {
		symbols := labels[e]
		slices.Sort(symbols)
		fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", quote(e.from), quote(e.to), quote(strings.Join(symbols, ",")))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodes Returns every state plus any initial or final state missing from States, sorted.
func (a *Automaton) nodes() []string {
	all := a.states.Clone()
	all.Add(a.initialStates.Sorted()...)
	all.Add(a.finalStates.Sorted()...)
	return all.Sorted()
}

func writeNodes(buf *bytes.Buffer, shape, style string, states []string) {
	if len(states) == 0 {
		return
	}
	quoted := make([]string, len(states))
	for i, state := range states {
		quoted[i] = quote(state)
	}
	fmt.Fprintf(buf, "  node [shape = %s style = %s]; %s;\n", shape, style, strings.Join(quoted, " "))
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
