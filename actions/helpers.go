package actions

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// withinReach reports whether b lies within a's reach, using squared
// distance against squared reach so no square root is needed.
func withinReach(a, b model.Entity) bool {
	reachSq := fp.Mul(a.Reach, a.Reach)
	return fp.DistanceSq(a.Position, b.Position) <= reachSq
}

// lookupActor finds the actor entity for action in state.
func lookupActor(action model.Action, state model.WorldState) (model.Entity, bool) {
	e, ok := state.EntityByID(action.EntityID)
	if !ok {
		return model.Entity{}, false
	}
	return *e, true
}

// Ancestors walks both the parent_id and weld_parent_id edges from
// start until both terminate, returning every id visited (excluding
// start itself). Used by containment/weld-chain entanglement and by
// the cycle-rejection check LOAD/WELD perform at validation time.
func Ancestors(id string, state model.WorldState) []string {
	var out []string
	visit := func(getNext func(model.Entity) string) {
		cur := id
		seen := map[string]bool{id: true}
		for {
			e, ok := state.EntityByID(cur)
			if !ok {
				return
			}
			next := getNext(*e)
			if next == "" || seen[next] {
				return
			}
			out = append(out, next)
			seen[next] = true
			cur = next
		}
	}
	visit(func(e model.Entity) string { return e.ParentID })
	visit(func(e model.Entity) string { return e.WeldParentID })
	return out
}

// wouldCycle reports whether setting child's parent/weld-parent to
// proposedParent would introduce a cycle, i.e. child already appears
// in proposedParent's ancestor chain (which would make child its own
// ancestor transitively) or proposedParent equals child.
func wouldCycle(child, proposedParent string, state model.WorldState) bool {
	if child == proposedParent {
		return true
	}
	for _, a := range Ancestors(proposedParent, state) {
		if a == child {
			return true
		}
	}
	return false
}
