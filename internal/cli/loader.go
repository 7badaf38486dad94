package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/geange/fa"
)

// LoadAutomaton reads an automaton document from path, or from stdin when path is "-".
func LoadAutomaton(opts *RootOptions, path string, stdin io.Reader) (*fa.Automaton, error) {
	format := fa.FormatFromPath(path)
	if opts.InputFormat != "" {
		f, err := fa.ParseFormat(opts.InputFormat)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid input format", err)
		}
		format = f
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "read automaton", err)
	}

	a, err := fa.Decode(data, format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load "+path, err)
	}
	slog.Debug("automaton loaded",
		"path", path,
		"format", format.String(),
		"states", a.GetNumStates(),
		"transitions", a.GetNumTransitions(),
	)
	return a, nil
}
