package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geange/fa/internal/store"
)

func openStore(opts *RootOptions) (*store.Store, error) {
	if dir := filepath.Dir(opts.DB); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitCommandError, "create session directory", err)
		}
	}
	s, err := store.Open(opts.DB)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open session database", err)
	}
	return s, nil
}

func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return WrapExitError(ExitFailure, "session", err)
	}
	return WrapExitError(ExitCommandError, "session", err)
}

// NewSessionCommand creates the session command group.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Save and restore automata in the session database",
		// Applies to the subcommands when session is executed on its own.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSessionSaveCommand(rootOpts))
	cmd.AddCommand(newSessionLoadCommand(rootOpts))
	cmd.AddCommand(newSessionListCommand(rootOpts))
	cmd.AddCommand(newSessionDeleteCommand(rootOpts))
	return cmd
}

func newSessionSaveCommand(rootOpts *RootOptions) *cobra.Command {
	var name string
	var input []string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Store an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := LoadAutomaton(rootOpts, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Save(cmd.Context(), name, a, input); err != nil {
				return storeError(err)
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(map[string]string{"name": name}, "saved "+name)
		},
	}

	cmd.Flags().StringVar(&name, "name", store.LastSession, "entry name")
	cmd.Flags().StringSliceVar(&input, "input", nil, "input symbols to remember with the automaton")
	return cmd
}

func newSessionLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load [name]",
		Short: "Print a stored automaton",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := store.LastSession
			if len(args) == 1 {
				name = args[0]
			}
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			a, input, err := s.Load(cmd.Context(), name)
			if err != nil {
				return storeError(err)
			}
			if len(input) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "last input: %s\n", strings.Join(input, " "))
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Automaton(a)
		},
	}
}

func newSessionListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.List(cmd.Context())
			if err != nil {
				return storeError(err)
			}
			var b strings.Builder
			for _, e := range entries {
				fmt.Fprintf(&b, "%s\t%d states\t%s\n", e.Name, e.States, e.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(entries, strings.TrimSuffix(b.String(), "\n"))
		},
	}
}

func newSessionDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return storeError(err)
			}
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(map[string]string{"deleted": args[0]}, "deleted "+args[0])
		},
	}
}
