package actions

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// usedVolume returns the sum of volumes of entities currently
// contained in container.
func usedVolume(containerID string, state model.WorldState) fp.Scalar {
	var total fp.Scalar
	for _, e := range state.Entities {
		if e.ParentID == containerID {
			total = fp.Add(total, e.Volume)
		}
	}
	return total
}

// ValidateLoad requires the actor to reach both content and
// container, the container to actually be a container with spare
// volume, the content to not already be contained or welded, and the
// proposed containment to not introduce a cycle.
func ValidateLoad(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	content, ok := state.EntityByID(action.ContentID)
	if !ok {
		return false
	}
	container, ok := state.EntityByID(action.ContainerID)
	if !ok {
		return false
	}
	if !container.IsContainer {
		return false
	}
	if content.ParentID != "" || content.WeldParentID != "" {
		return false
	}
	if !withinReach(actor, *content) || !withinReach(actor, *container) {
		return false
	}
	if wouldCycle(content.ID, container.ID, state) {
		return false
	}
	used := usedVolume(container.ID, state)
	return fp.Add(used, content.Volume) <= container.ContainerVolume
}

// HandleLoad sets content.parent_id to container and folds content's
// mass into the container's.
func HandleLoad(action model.Action, ctx Context) []model.EntityUpdate {
	content, ok := ctx.State.EntityByID(action.ContentID)
	if !ok {
		return nil
	}
	container, ok := ctx.State.EntityByID(action.ContainerID)
	if !ok {
		return nil
	}

	return []model.EntityUpdate{
		model.UpdateFor(content.ID, model.EntityChanges{
			ParentID: model.PtrString(container.ID),
		}),
		model.UpdateFor(container.ID, model.EntityChanges{
			Mass: model.PtrScalar(fp.Add(container.Mass, content.Mass)),
		}),
	}
}

// ValidateUnload requires the content to currently be parented to the
// container given and the actor to reach the container.
func ValidateUnload(action model.Action, state model.WorldState) bool {
	actor, ok := lookupActor(action, state)
	if !ok {
		return false
	}
	content, ok := state.EntityByID(action.ContentID)
	if !ok {
		return false
	}
	container, ok := state.EntityByID(action.ContainerID)
	if !ok {
		return false
	}
	if content.ParentID != container.ID {
		return false
	}
	if action.NewPosition == nil {
		return false
	}
	return withinReach(actor, *container)
}

// HandleUnload is the inverse of HandleLoad: clears parent_id, gives
// content its new position, and removes its mass/volume from the
// container.
func HandleUnload(action model.Action, ctx Context) []model.EntityUpdate {
	content, ok := ctx.State.EntityByID(action.ContentID)
	if !ok {
		return nil
	}
	container, ok := ctx.State.EntityByID(action.ContainerID)
	if !ok {
		return nil
	}

	return []model.EntityUpdate{
		model.UpdateFor(content.ID, model.EntityChanges{
			ParentID: model.PtrString(""),
			Position: model.PtrVec(*action.NewPosition),
		}),
		model.UpdateFor(container.ID, model.EntityChanges{
			Mass: model.PtrScalar(fp.Max(0, fp.Sub(container.Mass, content.Mass))),
		}),
	}
}
