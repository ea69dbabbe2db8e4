package actions

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// ValidateThrust requires a positive magnitude, an actor with
// positive fuel, and a zoom-state compatible with maneuvering (a ship
// docked in ORBIT or SURFACE cannot free-thrust; only SPACE can).
func ValidateThrust(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	if action.Magnitude <= 0 {
		return false
	}
	if actor.ZoomState != model.ZoomSpace {
		return false
	}
	if actor.Fuel <= 0 {
		return false
	}
	return true
}

// HandleThrust computes effective thrust magnitude bounded by fuel
// available, burn rate, and the configured per-tick cap, then applies
// the resulting Δv, fuel cost, and propulsion mass loss to the actor.
func HandleThrust(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}

	burnRate := ctx.burnRate()
	maxPerTick := ctx.maxThrustPerTick()

	byFuel := fp.Div(actor.Fuel, burnRate)
	effective := fp.Min(action.Magnitude, fp.Min(byFuel, maxPerTick))
	if effective <= 0 {
		return nil
	}

	delta := fp.FromHeading(action.Heading).Scale(effective)
	newVelocity := actor.Velocity.Add(delta)
	newFuel := fp.Sub(actor.Fuel, fp.Mul(effective, burnRate))
	newMass := fp.Sub(actor.Mass, fp.Mul(effective, ctx.massPropulsionLoss()))

	return []model.EntityUpdate{
		model.UpdateFor(actor.ID, model.EntityChanges{
			Velocity: model.PtrVec(newVelocity),
			Fuel:     model.PtrScalar(fp.Max(0, newFuel)),
			Mass:     model.PtrScalar(fp.Max(0, newMass)),
		}),
	}
}
