package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/longhaul/telemetry"
	"github.com/pthm-cable/longhaul/tick"
)

func runCmd() *cobra.Command {
	var seedFile, actionsFile, stateOut, metricsOut string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a per-tick action log against a seed state",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState(seedFile)
			if err != nil {
				return err
			}
			log, err := loadActionLog(actionsFile)
			if err != nil {
				return err
			}

			driver := tick.NewDriver()
			var rows []telemetry.MetricsRow
			for _, actionList := range log {
				next, m, err := driver.Step(state, actionList)
				if err != nil {
					return fmt.Errorf("tick %d: %w", state.Tick, err)
				}
				state = next
				rows = append(rows, telemetry.MetricsRow{
					Tick:               state.Tick,
					ClusterCount:       m.ClusterCount,
					PermutationsTested: m.PermutationsTested,
					StalemateCount:     m.StalemateCount,
					SuccessCount:       m.SuccessCount,
					HeuristicFallbacks: m.HeuristicFallbacks,
				})
			}

			fmt.Printf("replayed %d ticks, final tick=%d, entities=%d\n", len(log), state.Tick, len(state.Entities))

			if stateOut != "" {
				if err := writeState(stateOut, state); err != nil {
					return err
				}
			}
			if metricsOut != "" {
				if err := telemetry.Dump(metricsOut, rows); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed", "", "path to a JSON-encoded seed WorldState")
	cmd.Flags().StringVar(&actionsFile, "actions", "", "path to a JSON-encoded per-tick action log")
	cmd.Flags().StringVar(&stateOut, "state-out", "", "optional path to write the final state as JSON")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "optional path to write a per-tick metrics CSV")
	cmd.MarkFlagRequired("seed")
	cmd.MarkFlagRequired("actions")

	return cmd
}
