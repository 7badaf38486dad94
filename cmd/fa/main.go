// Command fa tests, determinizes and minimizes finite automata.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/geange/fa/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !(errors.As(err, &exitErr) && exitErr.Code == cli.ExitFailure && exitErr.Err == nil) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
