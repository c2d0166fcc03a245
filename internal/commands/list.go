package commands

import (
	"github.com/spf13/cobra"

	"github.com/go-leo/gof/internal/cli"
	"github.com/go-leo/gof/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered pattern scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.ParseEnv()
		if err != nil {
			return err
		}
		printer := cli.NewPrinter(cmd.OutOrStdout(), !cfg.NoColor)
		printer.Heading("registered scenarios")
		for _, name := range scenario.Names() {
			printer.Item(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
