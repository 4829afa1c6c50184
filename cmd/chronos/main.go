// Command chronos converts between Unix-epoch instants and civil calendar
// fields from the command line.
package main

import (
	"os"

	"github.com/nathanial/chronos/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
