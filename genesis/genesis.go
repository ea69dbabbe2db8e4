// Package genesis supplies an initial WorldState of ships and resource
// wells. Its only callers in this module are its own tests: the
// replay CLI loads its seed state from a JSON file and the tuning
// harness builds its ship directly. It is deliberately not procedural
// universe generation — just a flat safe-spawn builder.
package genesis

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// Options configures a seeded starting state.
type Options struct {
	SeedLabel    string
	ShipCount    int
	WellCount    int
	Spacing      fp.Scalar
	ShipFuel     fp.Scalar
	ShipMass     fp.Scalar
	WellMass     fp.Scalar
	WellVolatile fp.Scalar
}

// DefaultOptions returns sensible defaults for a small test universe.
func DefaultOptions() Options {
	return Options{
		ShipCount:    2,
		WellCount:    1,
		Spacing:      fp.FromInt(1000),
		ShipFuel:     fp.FromInt(100),
		ShipMass:     fp.FromInt(1000),
		WellMass:     fp.FromInt(50000),
		WellVolatile: fp.FromInt(10000),
	}
}

// Spawn builds a WorldState with opts.ShipCount ships and
// opts.WellCount resource wells laid out along the +X axis with no
// overlaps, each with a freshly generated id. Ids here are
// tool/fixture concerns only: the resolver and tick driver never
// generate ids themselves, only consume caller-supplied ones.
func Spawn(opts Options) model.WorldState {
	state := model.WorldState{Seed: opts.SeedLabel}

	var cursor fp.Scalar
	for i := 0; i < opts.ShipCount; i++ {
		ship := model.NewShip(newID("ship"), fp.Vec2(cursor, 0))
		ship.Fuel = opts.ShipFuel
		ship.Mass = opts.ShipMass
		state.SpawnEntity(ship)
		cursor = fp.Add(cursor, opts.Spacing)
	}
	for i := 0; i < opts.WellCount; i++ {
		well := model.NewResourceWell(newID("well"), fp.Vec2(cursor, 0), opts.WellVolatile, opts.WellMass)
		state.SpawnEntity(well)
		cursor = fp.Add(cursor, opts.Spacing)
	}
	return state
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
