package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdutil"
	oerrors "github.com/wiptools/wip/internal/errors"
)

// Execute runs the root command and returns the process exit code. Errors
// are printed to the command's error stream unless a command already did;
// a user abort prints "Interrupted." and exits successfully.
func Execute(ctx context.Context, rootCmd *cobra.Command) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}
	return oerrors.ExitCodeFromError(cmdutil.PrintError(rootCmd.ErrOrStderr(), err))
}
