package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAutomaton(t *testing.T) {
	r := sampleAutomaton().Compile()

	require.Equal(t, 4, r.GetSize())
	require.NotEqual(t, -1, r.GetInitialState())
	assert.Equal(t, "1,3", r.StateName(r.GetInitialState()))
	assert.True(t, r.IsAccept(r.GetInitialState()))
	assert.False(t, r.IsAccept(-1))

	assert.True(t, r.Run(Symbols("aabb")))
	assert.False(t, r.Run(Symbols("a")))
	assert.False(t, r.Run(Symbols("ac")))
	assert.Equal(t, -1, r.Step(r.GetInitialState(), "c"))
	assert.Equal(t, -1, r.Step(-1, "a"))
	assert.Equal(t, -1, r.Step(r.GetSize(), "a"))
	assert.False(t, r.IsAccept(r.GetSize()))
	assert.Equal(t, "", r.StateName(r.GetSize()))
	assert.Equal(t, "", r.StateName(-1))

	for _, w := range words([]string{"a", "b"}, 6) {
		assert.Equal(t, sampleAutomaton().Accepts(w), r.Run(w), "%v", w)
	}
}

func TestRunAutomatonEmptyAlphabet(t *testing.T) {
	r := MakeEmptyString().Compile()
	assert.True(t, r.Run(nil))
	assert.False(t, r.Run([]string{"a"}))
}
