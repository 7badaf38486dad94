package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "text" | "json" | "yaml"
	InputFormat string // "" picks by file extension
	DB          string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the fa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fa",
		Short: "Finite automata toolkit",
		Long: `Test membership, determinize and minimize finite automata described in JSON or YAML.

An automaton document has the keys states, alphabet, initialStates, finalStates and
transitions (state -> symbol -> list of states; the empty symbol "" is an epsilon move).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.InputFormat, "input-format", "", "input format (json|yaml); default from file extension")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", defaultDBPath(), "session database path")

	cmd.AddCommand(NewAcceptsCommand(opts))
	cmd.AddCommand(NewClosureCommand(opts))
	cmd.AddCommand(NewDeterminizeCommand(opts))
	cmd.AddCommand(NewMinimizeCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDOTCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))

	return cmd
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fa-session.db"
	}
	return filepath.Join(dir, "fa", "session.db")
}
