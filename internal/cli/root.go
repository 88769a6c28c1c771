package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the albinosd CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "albinosd",
		Short: "albinosd - local configuration service",
		Long:  "A request/response configuration service exposed over a local UNIX-domain socket.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug-level) logging")

	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}
