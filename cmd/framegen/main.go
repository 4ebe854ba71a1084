package main

import (
	"errors"
	"os"

	"github.com/framewright/framegen/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// RunE errors are already printed by the formatters; only
		// flag/usage errors need echoing here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			cmd.PrintErrln("Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
