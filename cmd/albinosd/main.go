// Command albinosd runs the local configuration service.
package main

import (
	"os"

	"github.com/raven-os/albinos/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
