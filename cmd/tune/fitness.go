package main

import (
	"math"

	"github.com/pthm-cable/longhaul/config"
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
	"github.com/pthm-cable/longhaul/tick"
)

// Target band for simulated fuel economy (distance traveled per unit
// fuel consumed across a refine-then-burn cycle). Higher
// REFINE_EFFICIENCY means more fuel per batch of volatiles. THRUST's
// Δv does not depend on ship mass, so MASS_PROPULSION_LOSS only
// changes how much mass the ship sheds as it burns and does not move
// the economy figure.
const (
	targetEconomyLow  = 15.0
	targetEconomyHigh = 25.0
	burnTicks         = 20
)

// FitnessEvaluator runs headless ticks and computes fitness (lower is
// better).
type FitnessEvaluator struct {
	params *ParamVector
	seeds  []fp.Scalar // starting volatiles per seeded run
	cfg    *config.Config
}

// NewFitnessEvaluator creates a new evaluator over a fixed set of
// seeded starting volatile amounts.
func NewFitnessEvaluator(params *ParamVector, seeds []fp.Scalar, cfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{params: params, seeds: seeds, cfg: cfg}
}

// Evaluate computes fitness for a parameter vector: squared distance
// of the average fuel economy, across all seeds, outside the target
// band.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	fe.params.ApplyToConfig(fe.cfg, x)

	var total float64
	for _, seed := range fe.seeds {
		total += fe.runOne(seed)
	}
	avg := total / float64(len(fe.seeds))

	if avg < targetEconomyLow {
		d := targetEconomyLow - avg
		return d * d
	}
	if avg > targetEconomyHigh {
		d := avg - targetEconomyHigh
		return d * d
	}
	return 0
}

// runOne drives a solo ship through one REFINE tick followed by
// burnTicks THRUST ticks and returns distance traveled per unit fuel
// consumed.
func (fe *FitnessEvaluator) runOne(startVolatiles fp.Scalar) float64 {
	ship := model.NewShip("tune-ship", fp.Vec2(0, 0))
	ship.Mass = fp.FromInt(1000)
	ship.Volatiles = startVolatiles

	state := model.WorldState{Entities: []model.Entity{ship}}
	driver := tick.NewDriver()

	refine := []model.Action{{
		Kind:            model.ActionRefine,
		EntityID:        ship.ID,
		VolatilesAmount: startVolatiles,
	}}
	next, _, err := driver.Step(state, refine)
	if err != nil {
		return 0
	}
	state = next

	startFuel := state.Entities[0].Fuel
	startPos := state.Entities[0].Position

	thrust := []model.Action{{
		Kind:      model.ActionThrust,
		EntityID:  ship.ID,
		Magnitude: fp.FromInt(1000),
		Heading:   fp.FromInt(0),
	}}
	for i := 0; i < burnTicks; i++ {
		next, _, err := driver.Step(state, thrust)
		if err != nil {
			break
		}
		state = next
		if state.Entities[0].Fuel <= 0 {
			break
		}
	}

	endFuel := state.Entities[0].Fuel
	endPos := state.Entities[0].Position

	consumed := fp.Sub(startFuel, endFuel).ToFloat()
	if consumed <= 0 {
		return 0
	}
	dist := math.Sqrt(fp.DistanceSq(startPos, endPos).ToFloat())
	return dist / consumed
}
