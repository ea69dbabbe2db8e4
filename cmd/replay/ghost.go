package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/longhaul/tick"
)

// ghostCmd is the speculative projection: it replays the seed and
// action log exactly like run, then runs
// one further speculative tick against a copy of the resulting state
// with a hypothetical extra action list appended, to show where those
// actions would lead without committing them.
func ghostCmd() *cobra.Command {
	var seedFile, actionsFile, hypotheticalFile string

	cmd := &cobra.Command{
		Use:   "ghost",
		Short: "Project a hypothetical tick past the end of a replayed action log",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState(seedFile)
			if err != nil {
				return err
			}
			log, err := loadActionLog(actionsFile)
			if err != nil {
				return err
			}
			hypothetical, err := loadFlatActions(hypotheticalFile)
			if err != nil {
				return err
			}

			driver := tick.NewDriver()
			for _, actionList := range log {
				next, _, err := driver.Step(state, actionList)
				if err != nil {
					return fmt.Errorf("tick %d: %w", state.Tick, err)
				}
				state = next
			}

			projected := state.Snapshot()
			ghostState, m, err := driver.Step(projected, hypothetical)
			if err != nil {
				return fmt.Errorf("ghost tick: %w", err)
			}

			fmt.Printf("ghost projection from tick %d: %d entities, %d clusters, %d stalemates, %d voided\n",
				state.Tick, len(ghostState.Entities), m.ClusterCount, m.StalemateCount, len(m.Voided))
			for _, d := range m.Voided {
				fmt.Printf("  voided %s (%s): %s\n", d.Action.EntityID, d.Action.Kind, d.Void)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&seedFile, "seed", "", "path to a JSON-encoded seed WorldState")
	cmd.Flags().StringVar(&actionsFile, "actions", "", "path to a JSON-encoded per-tick action log")
	cmd.Flags().StringVar(&hypotheticalFile, "hypothetical", "", "path to a JSON-encoded action list to project one further tick")
	cmd.MarkFlagRequired("seed")
	cmd.MarkFlagRequired("actions")
	cmd.MarkFlagRequired("hypothetical")

	return cmd
}
