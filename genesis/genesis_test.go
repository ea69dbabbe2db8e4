package genesis

import (
	"testing"

	"github.com/pthm-cable/longhaul/fp"
)

func TestSpawnProducesDistinctNonOverlappingIDs(t *testing.T) {
	opts := DefaultOptions()
	opts.ShipCount = 3
	opts.WellCount = 2
	state := Spawn(opts)

	if len(state.Entities) != 5 {
		t.Fatalf("entity count = %d, want 5", len(state.Entities))
	}
	seen := make(map[string]bool)
	for _, e := range state.Entities {
		if seen[e.ID] {
			t.Errorf("duplicate id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestSpawnShipsHaveFuelAndMass(t *testing.T) {
	opts := DefaultOptions()
	state := Spawn(opts)
	for _, e := range state.Entities {
		if e.Kind != "SHIP" {
			continue
		}
		if e.Fuel != opts.ShipFuel {
			t.Errorf("ship fuel = %v, want %v", e.Fuel, opts.ShipFuel)
		}
		if e.Mass != opts.ShipMass {
			t.Errorf("ship mass = %v, want %v", e.Mass, opts.ShipMass)
		}
	}
}

func TestSpawnLaysOutEntitiesAlongXWithSpacing(t *testing.T) {
	opts := DefaultOptions()
	opts.ShipCount = 2
	opts.WellCount = 0
	opts.Spacing = fp.FromInt(500)
	state := Spawn(opts)

	if state.Entities[0].Position.X != 0 {
		t.Errorf("first ship x = %v, want 0", state.Entities[0].Position.X)
	}
	if state.Entities[1].Position.X != fp.FromInt(500) {
		t.Errorf("second ship x = %v, want 500", state.Entities[1].Position.X)
	}
}
