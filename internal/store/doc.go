// Package store persists automata in SQLite so a session can be resumed: each entry holds the
// automaton in the JSON interchange format together with the last input that was tested against it.
package store
