// Package maneuver implements the three physics/binding phases:
// translate roots by velocity, bind contained children to their
// container's position, bind welded children to their weld-parent's
// position plus offset. There is no drag, no terrain, and no
// wrap-around; velocity integrates straight into position.
package maneuver

import "github.com/pthm-cable/longhaul/model"

// TranslateRoots moves every root entity (no parent, no weld-parent)
// in state by its velocity, in place. Contained and welded entities
// are deliberately skipped — they are re-snapped by Bind instead.
func TranslateRoots(state *model.WorldState) {
	for i := range state.Entities {
		e := &state.Entities[i]
		if e.ParentID != "" || e.WeldParentID != "" {
			continue
		}
		e.Position = e.Position.Add(e.Velocity)
	}
}

// Bind re-snaps every contained entity to its container's current
// position, and every welded entity to its weld-parent's current
// position plus its relative offset, in place. An orphaned
// parent/weld-parent (absent from the state) leaves the child
// unchanged. Bind runs between waves (to prevent teleportation when a
// parent moves mid-tick) and once more after the final translation.
func Bind(state *model.WorldState) {
	for i := range state.Entities {
		e := &state.Entities[i]
		if e.ParentID == "" {
			continue
		}
		parent, ok := state.EntityByID(e.ParentID)
		if !ok {
			continue
		}
		e.Position = parent.Position
	}
	for i := range state.Entities {
		e := &state.Entities[i]
		if e.WeldParentID == "" {
			continue
		}
		parent, ok := state.EntityByID(e.WeldParentID)
		if !ok {
			continue
		}
		e.Position = parent.Position.Add(e.RelativeOffset)
	}
}

// ApplyManeuver composes TranslateRoots then Bind — the "translate
// then bind" step the tick pipeline runs exactly once, after the
// final wave.
func ApplyManeuver(state *model.WorldState) {
	TranslateRoots(state)
	Bind(state)
}
