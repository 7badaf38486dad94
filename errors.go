package fa

import (
	"errors"
)

// ErrMalformedInput is returned when a structured-text document cannot be turned into an automaton.
var ErrMalformedInput = errors.New("malformed input")
