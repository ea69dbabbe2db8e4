package actions

import (
	"fmt"

	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// ValidateExtract requires a positive rate, a reachable, non-empty
// origin, and — for MINERALS — a target point to spawn the new store at.
func ValidateExtract(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	if action.Rate <= 0 {
		return false
	}
	origin, ok := state.EntityByID(action.OriginID)
	if !ok {
		return false
	}
	if !withinReach(actor, *origin) {
		return false
	}
	switch action.ResourceType {
	case model.ResourceVolatiles:
		return origin.Volatiles > 0
	case model.ResourceMinerals:
		if action.TargetPoint == nil {
			return false
		}
		return origin.Mass > 0
	default:
		return false
	}
}

// HandleExtract transfers min(rate, available) from the origin to
// the actor (VOLATILES) or spawns a new MINERAL_STORE at the target
// point carrying that much mass, deducted from the origin (MINERALS).
func HandleExtract(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}
	origin, ok := ctx.State.EntityByID(action.OriginID)
	if !ok {
		return nil
	}

	switch action.ResourceType {
	case model.ResourceVolatiles:
		transferred := fp.Min(action.Rate, origin.Volatiles)
		if transferred <= 0 {
			return nil
		}
		return []model.EntityUpdate{
			model.UpdateFor(actor.ID, model.EntityChanges{
				Volatiles: model.PtrScalar(fp.Add(actor.Volatiles, transferred)),
			}),
			model.UpdateFor(origin.ID, model.EntityChanges{
				Volatiles: model.PtrScalar(fp.Sub(origin.Volatiles, transferred)),
			}),
		}
	case model.ResourceMinerals:
		transferred := fp.Min(action.Rate, origin.Mass)
		if transferred <= 0 {
			return nil
		}
		spawned := model.NewMineralStore(spawnedMineralID(action, ctx), *action.TargetPoint, transferred)
		return []model.EntityUpdate{
			model.SpawnUpdate(spawned),
			model.UpdateFor(origin.ID, model.EntityChanges{
				Mass: model.PtrScalar(fp.Sub(origin.Mass, transferred)),
			}),
		}
	default:
		return nil
	}
}

// spawnedMineralID derives a deterministic id for a mineral store
// spawned by EXTRACT, so repeated replays of the same action produce
// the same id without needing an RNG or UUID inside the core. Tick
// and order index are included so two
// EXTRACT MINERALS actions by the same actor against the same origin
// in different ticks or waves never collide on id.
func spawnedMineralID(action model.Action, ctx Context) string {
	return fmt.Sprintf("%s:extract:%s:%d:%d", action.EntityID, action.OriginID, ctx.Tick, action.OrderIndex)
}
