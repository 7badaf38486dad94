package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	m := sampleAutomaton().Minimize()

	require.True(t, m.IsDeterministic())
	assert.Equal(t, 4, m.GetNumStates())
	assert.Equal(t, []string{"1,3"}, m.InitialStates().Sorted())
	assert.Equal(t, []string{"1,3"}, m.FinalStates().Sorted())

	for _, w := range words([]string{"a", "b"}, 6) {
		assert.Equal(t, sampleAutomaton().Accepts(w), m.Accepts(w), "%v", w)
	}
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// 1 and 2 both accept exactly a*; 3 is a dead state
	a := New([]string{"0", "1", "2", "3"}, []string{"a", "b"}, Transitions{
		"0": {"a": {"1"}, "b": {"2"}},
		"1": {"a": {"1"}, "b": {"3"}},
		"2": {"a": {"2"}, "b": {"3"}},
		"3": {"a": {"3"}, "b": {"3"}},
	}, []string{"0"}, []string{"1", "2"})
	require.True(t, a.IsDeterministic())

	m := a.Minimize()
	require.True(t, m.IsDeterministic())
	assert.Equal(t, []string{"0", "1,2", "3"}, m.States().Sorted())
	assert.Equal(t, []string{"1,2"}, m.FinalStates().Sorted())
	assert.True(t, m.HasTransition("0", "a", "1,2"))
	assert.True(t, m.HasTransition("0", "b", "1,2"))
	assert.True(t, m.HasTransition("1,2", "a", "1,2"))
	assert.True(t, m.HasTransition("1,2", "b", "3"))
	assert.NotSame(t, a, m)
}

func TestMinimizeDropsUnreachable(t *testing.T) {
	a := New([]string{"0", "1"}, []string{"a"}, Transitions{
		"0": {"a": {"0"}},
		"1": {"a": {"0"}},
	}, []string{"0"}, []string{"1"})
	require.True(t, a.IsDeterministic())

	m := a.Minimize()
	assert.Equal(t, []string{"0"}, m.States().Sorted())
	assert.Empty(t, m.FinalStates())
}

func TestMinimizeSingleClass(t *testing.T) {
	tests := []struct {
		name  string
		a     *Automaton
		final bool
	}{
		{"all final", New([]string{"0", "1"}, []string{"a"}, Transitions{
			"0": {"a": {"1"}},
			"1": {"a": {"0"}},
		}, []string{"0"}, []string{"0", "1"}), true},
		{"none final", New([]string{"0", "1"}, []string{"a"}, Transitions{
			"0": {"a": {"1"}},
			"1": {"a": {"0"}},
		}, []string{"0"}, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.a.Minimize()
			assert.Equal(t, []string{"0,1"}, m.States().Sorted())
			assert.Equal(t, tt.final, m.IsAccept("0,1"))
			assert.True(t, m.HasTransition("0,1", "a", "0,1"))
		})
	}
}

func TestMinimizeLongChain(t *testing.T) {
	// a^n for n divisible by 3, spelled with six states
	states := []string{"0", "1", "2", "3", "4", "5"}
	a := New(states, []string{"a"}, nil, []string{"0"}, []string{"0", "3"})
	for i, from := range states {
		a.AddTransition(from, "a", states[(i+1)%len(states)])
	}
	require.True(t, a.IsDeterministic())

	m := a.Minimize()
	assert.Equal(t, []string{"0,3", "1,4", "2,5"}, m.States().Sorted())
	assert.Equal(t, m.GetNumStates(), m.Minimize().GetNumStates())
}

func TestMinimizeIdempotent(t *testing.T) {
	m := sampleAutomaton().Minimize()
	mm := m.Minimize()
	assert.Equal(t, m.GetNumStates(), mm.GetNumStates())
}
