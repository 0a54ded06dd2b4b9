package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/config"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	Config  string
	Verbose int
}

// AddTo registers the global flags on the root command.
func (f *globalFlags) AddTo(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.Config, "config", "",
		"Path to the identity config file (env: "+config.EnvConfig+")")
	cmd.PersistentFlags().CountVarP(&f.Verbose, "verbose", "v",
		"Increase output verbosity (-v debug, -vv with timestamps and callers)")
}
