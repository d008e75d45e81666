package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default maze configuration",
	Long: `Print the built-in maze.yaml. Save it as ~/.maze/configs/maze.yaml or
./configs/maze.yaml to override the defaults, or pass it with --config.

Examples:
  maze config > ~/.maze/configs/maze.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(defaultGame)
	if data == nil {
		fmt.Fprintln(os.Stderr, "Error: no default config embedded")
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
