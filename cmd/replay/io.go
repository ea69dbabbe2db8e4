package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pthm-cable/longhaul/model"
)

// loadState reads a JSON-encoded model.WorldState from path. The
// JSON shape is a tool convenience, not a format commitment the core
// depends on.
func loadState(path string) (model.WorldState, error) {
	var state model.WorldState
	data, err := os.ReadFile(path)
	if err != nil {
		return state, fmt.Errorf("reading state file: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("parsing state file: %w", err)
	}
	return state, nil
}

// loadActionLog reads a JSON-encoded per-tick action log: one
// []model.Action entry per tick, in replay order.
func loadActionLog(path string) ([][]model.Action, error) {
	var log [][]model.Action
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading action log: %w", err)
	}
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parsing action log: %w", err)
	}
	return log, nil
}

// loadFlatActions reads a JSON-encoded []model.Action, the format
// used for a single hypothetical tick's worth of actions.
func loadFlatActions(path string) ([]model.Action, error) {
	var list []model.Action
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading action list: %w", err)
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing action list: %w", err)
	}
	return list, nil
}

func writeState(path string, state model.WorldState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
