package commands

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/go-leo/gof/internal/cli"
	"github.com/go-leo/gof/scenario"
)

var jsonOutput bool

var runCmd = &cobra.Command{
	Use:   "run <pattern>",
	Short: "Run one pattern scenario and relay its output lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.ParseEnv()
		if err != nil {
			return err
		}
		if jsonOutput || cfg.JSON {
			report, err := scenario.NewRunner(scenario.GetRegistry()).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			payload, err := jsoniter.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		}
		runner := scenario.NewRunner(scenario.GetRegistry(), scenario.Writer(cmd.OutOrStdout()))
		_, err = runner.Run(cmd.Context(), args[0])
		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the run report as JSON")
	RootCmd.AddCommand(runCmd)
}
