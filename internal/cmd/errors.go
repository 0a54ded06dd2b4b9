package cmd

import (
	"github.com/spf13/cobra"

	oerrors "github.com/wiptools/wip/internal/errors"
)

// withValidation turns argument errors into validation errors so that a
// wrong number of arguments exits like any other violated pre-condition.
func withValidation(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return oerrors.NewValidationError(err.Error(), "",
				"Run '"+cmd.CommandPath()+" --help' for usage.")
		}
		return nil
	}
}
