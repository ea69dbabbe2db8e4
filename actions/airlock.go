package actions

import "github.com/pthm-cable/longhaul/model"

// ValidateSealAirlock rejects self-targeting no-ops: sealing an
// already-sealed airlock is meaningless.
func ValidateSealAirlock(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	return !actor.AirlockSealed
}

// HandleSealAirlock sets the actor's airlock-sealed flag.
func HandleSealAirlock(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}
	return []model.EntityUpdate{
		model.UpdateFor(actor.ID, model.EntityChanges{AirlockSealed: model.PtrBool(true)}),
	}
}

// ValidateUnsealAirlock rejects unsealing an already-unsealed airlock.
func ValidateUnsealAirlock(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	return actor.AirlockSealed
}

// HandleUnsealAirlock clears the actor's airlock-sealed flag.
func HandleUnsealAirlock(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}
	return []model.EntityUpdate{
		model.UpdateFor(actor.ID, model.EntityChanges{AirlockSealed: model.PtrBool(false)}),
	}
}
