package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := sampleAutomaton()

	assert.Equal(t, 4, a.GetNumStates())
	assert.Equal(t, 6, a.GetNumTransitions())
	assert.True(t, a.Alphabet().Equal(NewSet("a", "b")))
	assert.True(t, a.IsAccept("3"))
	assert.False(t, a.IsAccept("2"))

	t.Run("EpsilonNeverInAlphabet", func(t *testing.T) {
		b := New(nil, []string{"a", Epsilon}, nil, nil, nil)
		assert.True(t, b.Alphabet().Equal(NewSet("a")))

		b.SetAlphabet(Epsilon, "x")
		assert.True(t, b.Alphabet().Equal(NewSet("x")))
	})

	t.Run("EmptyDestinationsDropped", func(t *testing.T) {
		b := New([]string{"0"}, []string{"a"}, Transitions{"0": {"a": {}}}, nil, nil)
		assert.Empty(t, b.Transitions())
	})

	t.Run("AccessorsReturnCopies", func(t *testing.T) {
		a.States().Add("x")
		a.FinalStates().Remove("1")
		a.Transitions()["1"]["a"] = nil
		assert.Equal(t, 4, a.GetNumStates())
		assert.True(t, a.IsAccept("1"))
		assert.True(t, a.HasTransition("1", "a", "2"))
	})
}

func TestAddTransition(t *testing.T) {
	t.Run("MergesAsSet", func(t *testing.T) {
		a := New([]string{"0", "1", "2"}, []string{"a"}, nil, nil, nil)
		a.AddTransition("0", "a", "1", "2")
		a.AddTransition("0", "a", "2", "1")
		a.AddTransition("0", "a", "1")
		a.AddTransition("0", "a", "2", "0")

		assert.Equal(t, []string{"0", "1", "2"}, a.Transitions()["0"]["a"])
		assert.Equal(t, 3, a.GetNumTransitions())
	})

	t.Run("NoDestinationsIsNoop", func(t *testing.T) {
		a := New([]string{"0"}, []string{"a"}, nil, nil, nil)
		a.AddTransition("0", "a")
		assert.Empty(t, a.Transitions())
	})

	t.Run("Epsilon", func(t *testing.T) {
		a := New([]string{"0", "1"}, nil, nil, nil, nil)
		a.AddTransition("0", Epsilon, "1")
		assert.True(t, a.HasTransition("0", Epsilon, "1"))
		assert.Equal(t, 0, a.Alphabet().Len())
	})

	t.Run("UnknownStatesTolerated", func(t *testing.T) {
		a := New([]string{"0"}, []string{"a"}, nil, nil, nil)
		a.AddTransition("ghost", "a", "0")
		assert.True(t, a.HasTransition("ghost", "a", "0"))
		assert.Equal(t, 1, a.GetNumStates())
	})
}

func TestHasTransition(t *testing.T) {
	a := New(nil, []string{"a"}, Transitions{"0": {"a": {"1", "2"}}}, nil, nil)

	tests := []struct {
		name   string
		from   string
		symbol string
		to     []string
		want   bool
	}{
		{"single", "0", "a", []string{"1"}, true},
		{"all", "0", "a", []string{"2", "1"}, true},
		{"partial", "0", "a", []string{"1", "3"}, false},
		{"unknown state", "9", "a", []string{"1"}, false},
		{"unknown symbol", "0", "b", []string{"1"}, false},
		{"vacuous", "0", "a", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, a.HasTransition(tt.from, tt.symbol, tt.to...),
				"HasTransition(%q, %q, %v)", tt.from, tt.symbol, tt.to)
		})
	}
}

func TestRemoveTransition(t *testing.T) {
	t.Run("PrunesEmptyEntries", func(t *testing.T) {
		a := New([]string{"0", "1"}, []string{"a"}, Transitions{"0": {"a": {"1"}}}, nil, nil)
		a.RemoveTransition("0", "a", "1")

		assert.False(t, a.HasTransition("0", "a", "1"))
		_, ok := a.Transitions()["0"]
		assert.False(t, ok)
		assert.Empty(t, a.transitions)
	})

	t.Run("KeepsOtherSymbols", func(t *testing.T) {
		a := New(nil, []string{"a", "b"}, Transitions{"0": {"a": {"1"}, "b": {"1"}}}, nil, nil)
		a.RemoveTransition("0", "a", "1")

		require.Contains(t, a.Transitions(), "0")
		assert.NotContains(t, a.Transitions()["0"], "a")
		assert.True(t, a.HasTransition("0", "b", "1"))
	})

	t.Run("PartialDestinations", func(t *testing.T) {
		a := New(nil, []string{"a"}, Transitions{"0": {"a": {"1", "2"}}}, nil, nil)
		a.RemoveTransition("0", "a", "2")
		assert.Equal(t, []string{"1"}, a.Transitions()["0"]["a"])
	})

	t.Run("MissingKeysAreNoops", func(t *testing.T) {
		a := sampleAutomaton()
		assert.NotPanics(t, func() {
			a.RemoveTransition("9", "a", "1")
			a.RemoveTransition("1", "z", "2")
			a.RemoveTransition("1", "a", "4")
		})
		assert.Equal(t, 6, a.GetNumTransitions())
	})
}

func TestSetTransitions(t *testing.T) {
	a := sampleAutomaton()
	a.SetTransitions(Transitions{"1": {"b": {"1"}}})

	assert.Equal(t, Transitions{"1": {"b": {"1"}}}, a.Transitions())
	assert.Equal(t, []string{"1"}, a.Destinations("1", "b").Sorted())
	assert.Equal(t, 0, a.Destinations("1", "a").Len())
}

func TestClone(t *testing.T) {
	a := sampleAutomaton()
	c := a.Clone()
	c.AddTransition("2", "b", "4")
	c.SetFinalStates("4")

	assert.False(t, a.HasTransition("2", "b", "4"))
	assert.True(t, a.IsAccept("1"))
	assert.Equal(t, a.Document(), sampleAutomaton().Document())
}
