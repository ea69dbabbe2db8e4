package actions

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// ValidateWeld requires the actor to be airlock-sealed, both actor and
// target to be currently un-welded and uncontained, both within reach
// of each other, and the proposed weld to not introduce a cycle.
func ValidateWeld(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	if action.EntityID == action.TargetID {
		return false
	}
	target, ok := state.EntityByID(action.TargetID)
	if !ok {
		return false
	}
	if !actor.AirlockSealed {
		return false
	}
	if actor.WeldParentID != "" || target.WeldParentID != "" {
		return false
	}
	if actor.ParentID != "" || target.ParentID != "" {
		return false
	}
	if !withinReach(actor, *target) {
		return false
	}
	return !wouldCycle(target.ID, actor.ID, state)
}

// HandleWeld attaches target to actor: target.weld_parent_id = actor,
// target.relative_offset = target.position - actor.position, and
// target's mass folds into actor's.
func HandleWeld(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}
	target, ok := ctx.State.EntityByID(action.TargetID)
	if !ok {
		return nil
	}

	offset := target.Position.Sub(actor.Position)

	return []model.EntityUpdate{
		model.UpdateFor(target.ID, model.EntityChanges{
			WeldParentID:   model.PtrString(actor.ID),
			RelativeOffset: model.PtrVec(offset),
		}),
		model.UpdateFor(actor.ID, model.EntityChanges{
			Mass: model.PtrScalar(fp.Add(actor.Mass, target.Mass)),
		}),
	}
}

// ValidateUnweld requires target to currently be welded to actor.
func ValidateUnweld(action model.Action, state model.WorldState) bool {
	_, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	target, ok := state.EntityByID(action.TargetID)
	if !ok {
		return false
	}
	return target.WeldParentID == action.EntityID
}

// HandleUnweld is the inverse of HandleWeld: clears weld_parent_id and
// the offset, and splits the folded mass back out of the actor.
func HandleUnweld(action model.Action, ctx Context) []model.EntityUpdate {
	actor, ok := lookupActor(action, ctx.State)
	if !ok {
		return nil
	}
	target, ok := ctx.State.EntityByID(action.TargetID)
	if !ok {
		return nil
	}

	return []model.EntityUpdate{
		model.UpdateFor(target.ID, model.EntityChanges{
			WeldParentID:   model.PtrString(""),
			RelativeOffset: model.PtrVec(fp.Vector2{}),
		}),
		model.UpdateFor(actor.ID, model.EntityChanges{
			Mass: model.PtrScalar(fp.Max(0, fp.Sub(actor.Mass, target.Mass))),
		}),
	}
}
