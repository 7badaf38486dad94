package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	a := sampleAutomaton()

	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a", false},
		{"aa", true},
		{"bb", true},
		{"aabb", true},
		{"bbaa", true},
		{"ab", false},
		{"aab", false},
		{"abab", false},
		{"aaaabbbb", true},
		{"c", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(a, tt.input), "Run(%q)", tt.input)
		})
	}
}

func TestAcceptsTokens(t *testing.T) {
	a := New([]string{"s", "t"}, []string{"ab", "c"}, Transitions{
		"s": {"ab": {"t"}},
		"t": {"c": {"s"}},
	}, []string{"s"}, []string{"t"})

	assert.True(t, a.Accepts([]string{"ab"}))
	assert.True(t, a.Accepts([]string{"ab", "c", "ab"}))
	assert.False(t, a.Accepts([]string{"a", "b"}))
	assert.False(t, a.Accepts([]string{"ab", ""}))
}

func TestAcceptsEdgeCases(t *testing.T) {
	t.Run("NoInitialStates", func(t *testing.T) {
		a := sampleAutomaton()
		a.SetInitialStates()
		assert.False(t, a.Accepts(nil))
		assert.False(t, Run(a, "aa"))
	})

	t.Run("FinalReachedByEpsilonAfterInput", func(t *testing.T) {
		a := New([]string{"0", "1", "2"}, []string{"a"}, Transitions{
			"0": {"a": {"1"}},
			"1": {Epsilon: {"2"}},
		}, []string{"0"}, []string{"2"})
		assert.True(t, Run(a, "a"))
		assert.False(t, Run(a, ""))
	})

	t.Run("EpsilonOnlyState", func(t *testing.T) {
		a := New([]string{"0", "1", "2"}, []string{"a"}, Transitions{
			"0": {Epsilon: {"1"}},
			"1": {"a": {"2"}},
		}, []string{"0"}, []string{"2"})
		assert.True(t, Run(a, "a"))
		assert.False(t, Run(a, "aa"))
	})

	t.Run("StaleFinalState", func(t *testing.T) {
		a := New([]string{"0"}, []string{"a"}, Transitions{
			"0": {"a": {"gone"}},
		}, []string{"0"}, []string{"gone"})
		assert.True(t, Run(a, "a"))
	})

	t.Run("EpsilonSelfLoops", func(t *testing.T) {
		a := New([]string{"0", "1"}, []string{"a"}, Transitions{
			"0": {Epsilon: {"0", "1"}, "a": {"0"}},
			"1": {Epsilon: {"0", "1"}},
		}, []string{"0", "1"}, nil)
		assert.False(t, Run(a, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	})

	t.Run("HighlyNondeterministic", func(t *testing.T) {
		// every state reaches every state on every symbol; only the empty-input check can fail
		states := []string{"0", "1", "2", "3", "4", "5", "6", "7"}
		a := New(states, []string{"a"}, nil, states, []string{"7"})
		for _, from := range states {
			a.AddTransition(from, "a", states...)
			a.AddTransition(from, Epsilon, states...)
		}
		a.SetFinalStates()
		input := make([]string, 64)
		for i := range input {
			input[i] = "a"
		}
		assert.False(t, a.Accepts(input))
	})
}
