package commands

import (
	"github.com/spf13/cobra"

	_ "github.com/go-leo/gof/catalog"
)

// RootCmd is the root command for gof.
var RootCmd = &cobra.Command{
	Use:          "gof",
	Short:        "gof - a runnable catalog of design pattern scenarios",
	Long:         `gof plays scripted design pattern scenarios and relays their output lines unmodified.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
