package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geange/fa"
	"github.com/geange/fa/internal/store"
)

// AcceptResult is the outcome of a membership test.
type AcceptResult struct {
	Input    []string `json:"input" yaml:"input"`
	Accepted bool     `json:"accepted" yaml:"accepted"`
}

// NewAcceptsCommand creates the accepts command.
func NewAcceptsCommand(rootOpts *RootOptions) *cobra.Command {
	var chars, remember bool

	cmd := &cobra.Command{
		Use:   "accepts <file> [symbol]...",
		Short: "Test whether the automaton accepts a symbol sequence",
		Long: `Test whether the automaton accepts the given symbols, one symbol per argument.
With --chars the symbols are given as one string and split per character.

Exits 0 when the input is accepted and 1 when it is rejected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadAutomaton(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			symbols := args[1:]
			if chars {
				symbols = fa.Symbols(strings.Join(symbols, ""))
			}
			accepted := a.Accepts(symbols)
			slog.Debug("membership tested", "symbols", len(symbols), "accepted", accepted)

			if remember {
				if err := rememberSession(cmd.Context(), rootOpts, a, symbols); err != nil {
					return err
				}
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			text := "rejected"
			if accepted {
				text = "accepted"
			}
			if err := formatter.Success(AcceptResult{Input: symbols, Accepted: accepted}, text); err != nil {
				return err
			}
			if !accepted {
				return NewExitError(ExitFailure, "input rejected")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chars, "chars", false, "split the input into one symbol per character")
	cmd.Flags().BoolVar(&remember, "remember", false, "store the automaton and input as the last session")
	return cmd
}

func rememberSession(ctx context.Context, opts *RootOptions, a *fa.Automaton, input []string) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Save(ctx, store.LastSession, a, input); err != nil {
		return WrapExitError(ExitCommandError, "remember session", err)
	}
	return nil
}

// NewClosureCommand creates the closure command.
func NewClosureCommand(rootOpts *RootOptions) *cobra.Command {
	var exclude bool

	cmd := &cobra.Command{
		Use:           "closure <file> <state>...",
		Short:         "Print the epsilon-closure of a set of states",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadAutomaton(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			closure := a.EpsilonClosure(fa.NewSet(args[1:]...), !exclude).Sorted()
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(closure, strings.Join(closure, " "))
		},
	}

	cmd.Flags().BoolVar(&exclude, "exclude-sources", false, "leave out seed states unless an epsilon cycle returns to them")
	return cmd
}

// NewDeterminizeCommand creates the determinize command.
func NewDeterminizeCommand(rootOpts *RootOptions) *cobra.Command {
	return transformCommand(rootOpts, "determinize", "Convert to an equivalent deterministic, total automaton",
		(*fa.Automaton).Determinize)
}

// NewMinimizeCommand creates the minimize command.
func NewMinimizeCommand(rootOpts *RootOptions) *cobra.Command {
	return transformCommand(rootOpts, "minimize", "Convert to the minimal equivalent deterministic automaton",
		(*fa.Automaton).Minimize)
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	return transformCommand(rootOpts, "convert", "Re-encode an automaton (see --format)",
		func(a *fa.Automaton) *fa.Automaton { return a })
}

func transformCommand(rootOpts *RootOptions, name, short string, transform func(*fa.Automaton) *fa.Automaton) *cobra.Command {
	return &cobra.Command{
		Use:           name + " <file>",
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadAutomaton(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			b := transform(a)
			slog.Debug(name+" done", "states", b.GetNumStates(), "deterministic", b.IsDeterministic())

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Automaton(b)
		},
	}
}

// NewDOTCommand creates the dot command.
func NewDOTCommand(rootOpts *RootOptions) *cobra.Command {
	var minimized bool

	cmd := &cobra.Command{
		Use:           "dot <file>",
		Short:         "Print Graphviz source for the automaton",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadAutomaton(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if minimized {
				a = a.Minimize()
			}
			_, err = cmd.OutOrStdout().Write([]byte(a.DOT()))
			return err
		},
	}

	cmd.Flags().BoolVar(&minimized, "minimized", false, "render the minimized automaton")
	return cmd
}
