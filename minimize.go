package fa

import (
	"strconv"
	"strings"
)

// Minimize Returns the minimal deterministic automaton equivalent to the receiver, determinizing
// first when needed. States unreachable from the initial state are dropped, then the rest are
// merged by Moore partition refinement: start from {final, non-final} and split classes by the
// classes their successors fall into, until a round leaves the class count unchanged.
//
// Each state of the result is named after the original states it merges.
func (a *Automaton) Minimize() *Automaton {
	d := a
	if !d.IsDeterministic() {
		d = d.Determinize()
	}

	idx := d.index()
	alphabet := d.alphabet.Sorted()

	live := idx.reachable(idx.set(d.initialStates))
	states := live.GetArray()

	// step[i][j] is the successor of states[i] on alphabet[j].
	step := make([][]uint, len(states))
	for i, state := range states {
		step[i] = make([]uint, len(alphabet))
		for j, symbol := range alphabet {
			step[i][j] = idx.moves[state][symbol][0]
		}
	}

	partition := newPartition(idx.size())
	for _, state := range states {
		if d.IsAccept(idx.names[state]) {
			partition.assign(state, "0")
		} else {
			partition.assign(state, "1")
		}
	}

	count := partition.size()
	for count < len(states) {
		next := newPartition(idx.size())
		var sig strings.Builder
		for i, state := range states {
			sig.Reset()
			sig.WriteString(strconv.Itoa(partition.class[state]))
			for _, to := range step[i] {
				sig.WriteByte(',')
				sig.WriteString(strconv.Itoa(partition.class[to]))
			}
			next.assign(state, sig.String())
		}
		partition = next

		if partition.size() == count {
			break
		}
		count = partition.size()
	}

	return partition.build(d, idx, states, alphabet, step)
}

// partition maps interned states to dense class ids, grouping by signature.
type partition struct {
	class   []int
	keys    map[string]int
	members [][]uint
}

func newPartition(n uint) *partition {
	return &partition{
		class: make([]int, n),
		keys:  make(map[string]int),
	}
}

func (p *partition) assign(state uint, signature string) {
	id, ok := p.keys[signature]
	if !ok {
		id = len(p.members)
		p.keys[signature] = id
		p.members = append(p.members, nil)
	}
	p.class[state] = id
	p.members[id] = append(p.members[id], state)
}

func (p *partition) size() int {
	return len(p.members)
}

func (p *partition) build(d *Automaton, idx *stateIndex, states []uint, alphabet []string, step [][]uint) *Automaton {
	m := newEmpty()
	m.alphabet = d.alphabet.Clone()

	position := make(map[uint]int, len(states))
	for i, state := range states {
		position[state] = i
	}

	names := newNamer()
	classNames := make([]string, p.size())
	for id, members := range p.members {
		set := NewSet()
		for _, state := range members {
			set.Add(idx.names[state])
		}
		classNames[id] = names.claim(set.Name())

		m.states.Add(classNames[id])
		if d.hasFinalState(set) {
			m.finalStates.Add(classNames[id])
		}
		if d.hasInitialState(set) {
			m.initialStates.Add(classNames[id])
		}
	}

	for id, members := range p.members {
		representative := position[members[0]]
		for j, symbol := range alphabet {
			to := step[representative][j]
			m.AddTransition(classNames[id], symbol, classNames[p.class[to]])
		}
	}
	return m
}
