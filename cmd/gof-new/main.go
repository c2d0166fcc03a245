package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-leo/gof/internal/scaffold"
)

var dir string

var rootCmd = &cobra.Command{
	Use:          "gof-new <package>",
	Short:        "Generate a pattern package skeleton (scenario plus test)",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg := args[0]
		return scaffold.File{Dir: filepath.Join(dir, pkg), Package: pkg}.Gen()
	},
}

func init() {
	rootCmd.Flags().StringVar(&dir, "dir", ".", "directory to create the package under")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
