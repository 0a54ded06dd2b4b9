// Package main is the entry point for the wip CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wiptools/wip/internal/cmd"
	"github.com/wiptools/wip/internal/cmdtypes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, cmd.NewRootCmd(&cmdtypes.GlobalConfig{}))
	stop()
	os.Exit(code)
}
