package actions

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// ValidateRefine requires a positive amount not exceeding the actor's
// volatiles. The configured per-tick batch cap is not checked here;
// HandleRefine clamps the refined amount to it.
func ValidateRefine(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	if action.VolatilesAmount <= 0 {
		return false
	}
	return actor.Volatiles >= action.VolatilesAmount
}

// HandleRefine converts volatiles into fuel at the configured
// efficiency, with the inefficiency lost as waste mass (THRUST's
// propulsion loss is the other source of mass loss per tick).
func HandleRefine(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}

	amount := fp.Min(action.VolatilesAmount, fp.Min(actor.Volatiles, ctx.refineMaxBatch()))
	if amount <= 0 {
		return nil
	}

	efficiency := ctx.refineEfficiency()
	gained := fp.Mul(amount, efficiency)
	waste := fp.Mul(amount, fp.Sub(fp.FromInt(1), efficiency))

	return []model.EntityUpdate{
		model.UpdateFor(actor.ID, model.EntityChanges{
			Volatiles: model.PtrScalar(fp.Sub(actor.Volatiles, amount)),
			Fuel:      model.PtrScalar(fp.Add(actor.Fuel, gained)),
			Mass:      model.PtrScalar(fp.Max(0, fp.Sub(actor.Mass, waste))),
		}),
	}
}
