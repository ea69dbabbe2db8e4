// Command replay is the deterministic replay CLI: given a seed state
// and a per-tick action log, it drives tick.Driver through every tick
// and reports the final state and metrics. Re-running the same inputs
// must reproduce the identical final state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/longhaul/config"
)

func main() {
	root := &cobra.Command{
		Use:   "replay",
		Short: "Deterministic tick-by-tick replay of a seeded world state",
	}

	var configPath string
	root.PersistentFlags().StringVar(&configPath, "config", "", "config YAML override (empty = embedded defaults)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return config.Init(configPath)
	}

	root.AddCommand(runCmd())
	root.AddCommand(ghostCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
