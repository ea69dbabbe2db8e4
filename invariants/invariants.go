// Package invariants checks the structural guarantees the world must
// satisfy after every tick: mass conservation, non-negative stores,
// parent/weld position binding, container volume, acyclic structure,
// tick monotonicity, and non-teleportation. A failing check is the one
// fatal condition in the core: the caller halts the tick rather than
// retrying or reporting-and-continuing.
package invariants

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// ID names a single post-tick invariant.
type ID string

const (
	MassConservation  ID = "MASS_CONSERVATION"
	NonNegativeStores ID = "NON_NEGATIVE_STORES"
	PositionBinding   ID = "POSITION_BINDING"
	WeldBinding       ID = "WELD_BINDING"
	VolumeCapacity    ID = "VOLUME_CAPACITY"
	AcyclicStructure  ID = "ACYCLIC_STRUCTURE"
	TickMonotonic     ID = "TICK_MONOTONIC"
	NonTeleportation  ID = "NON_TELEPORTATION"
)

// Violation records one failing invariant: which one, a human-readable
// message, and the entity ids implicated, so the caller has enough to
// reconstruct the failure without re-deriving it.
type Violation struct {
	Invariant ID
	Message   string
	EntityIDs []string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s (entities: %v)", v.Invariant, v.Message, v.EntityIDs)
}

// LogValue implements slog.LogValuer.
func (v Violation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("invariant", string(v.Invariant)),
		slog.String("message", v.Message),
		slog.Any("entity_ids", v.EntityIDs),
	)
}

// Params bounds the checks that need tolerances: the maximum
// per-tick deficit in total root mass (refining waste) and the
// non-teleportation floor. Exposed as parameters rather than a
// config constant because different callers (tests vs. the tuning
// harness) legitimately want different bounds.
type Params struct {
	MassLossBound    fp.Scalar
	NonTeleportFloor fp.Scalar
}

// DefaultParams returns permissive defaults suitable for a single-tick check.
func DefaultParams() Params {
	return Params{
		MassLossBound:    fp.FromInt(10000),
		NonTeleportFloor: fp.FromFloat(0.5),
	}
}

// Check runs every invariant against the transition from prev to next
// and returns every violation found (nil if none).
func Check(prev, next model.WorldState, params Params) []Violation {
	var out []Violation
	out = append(out, checkMassConservation(prev, next, params)...)
	out = append(out, checkNonNegative(next)...)
	out = append(out, checkPositionBinding(next)...)
	out = append(out, checkWeldBinding(next)...)
	out = append(out, checkVolume(next)...)
	out = append(out, checkAcyclic(next)...)
	out = append(out, checkTickMonotonic(prev, next)...)
	out = append(out, checkNonTeleportation(prev, next, params)...)
	return out
}

// checkMassConservation: total root mass must not increase, and any
// decrease must stay within the configured bound.
func checkMassConservation(prev, next model.WorldState, params Params) []Violation {
	prevTotal := prev.TotalRootMass()
	nextTotal := next.TotalRootMass()
	if nextTotal > prevTotal {
		return []Violation{{
			Invariant: MassConservation,
			Message:   fmt.Sprintf("total root mass increased from %d to %d", prevTotal, nextTotal),
		}}
	}
	deficit := prevTotal - nextTotal
	if deficit > int64(params.MassLossBound) {
		return []Violation{{
			Invariant: MassConservation,
			Message:   fmt.Sprintf("mass deficit %d exceeds bound %d", deficit, params.MassLossBound),
		}}
	}
	return nil
}

// checkNonNegative: no negative mass, fuel, or volatiles.
func checkNonNegative(next model.WorldState) []Violation {
	var out []Violation
	for _, e := range next.Entities {
		if e.Mass < 0 {
			out = append(out, Violation{NonNegativeStores, "negative mass", []string{e.ID}})
		}
		if e.Fuel < 0 {
			out = append(out, Violation{NonNegativeStores, "negative fuel", []string{e.ID}})
		}
		if e.Volatiles < 0 {
			out = append(out, Violation{NonNegativeStores, "negative volatiles", []string{e.ID}})
		}
	}
	return out
}

// checkPositionBinding: a contained entity sits exactly at its
// container's position.
func checkPositionBinding(next model.WorldState) []Violation {
	var out []Violation
	for _, e := range next.Entities {
		if e.ParentID == "" {
			continue
		}
		parent, ok := next.EntityByID(e.ParentID)
		if !ok {
			continue // orphaned parent is a maneuver-layer no-op, not an invariant failure
		}
		if e.Position != parent.Position {
			out = append(out, Violation{PositionBinding,
				fmt.Sprintf("position %+v does not match parent %s position %+v", e.Position, parent.ID, parent.Position),
				[]string{e.ID, parent.ID}})
		}
	}
	return out
}

// checkWeldBinding: a welded entity sits exactly at its weld-parent's
// position plus its relative offset.
func checkWeldBinding(next model.WorldState) []Violation {
	var out []Violation
	for _, e := range next.Entities {
		if e.WeldParentID == "" {
			continue
		}
		parent, ok := next.EntityByID(e.WeldParentID)
		if !ok {
			continue
		}
		want := parent.Position.Add(e.RelativeOffset)
		if e.Position != want {
			out = append(out, Violation{WeldBinding,
				fmt.Sprintf("position %+v does not match weld-parent %s position+offset %+v", e.Position, parent.ID, want),
				[]string{e.ID, parent.ID}})
		}
	}
	return out
}

// checkVolume: the sum of contained volumes stays within every
// container's capacity.
func checkVolume(next model.WorldState) []Violation {
	used := make(map[string]fp.Scalar)
	for _, e := range next.Entities {
		if e.ParentID != "" {
			used[e.ParentID] = fp.Add(used[e.ParentID], e.Volume)
		}
	}
	var out []Violation
	for _, e := range next.Entities {
		if !e.IsContainer {
			continue
		}
		if used[e.ID] > e.ContainerVolume {
			out = append(out, Violation{VolumeCapacity,
				fmt.Sprintf("used volume %v exceeds capacity %v", used[e.ID], e.ContainerVolume),
				[]string{e.ID}})
		}
	}
	return out
}

// checkAcyclic: no cycles in the parent relation or the weld relation.
func checkAcyclic(next model.WorldState) []Violation {
	var out []Violation
	if cyc := findCycle(next, func(e model.Entity) string { return e.ParentID }); cyc != nil {
		out = append(out, Violation{AcyclicStructure, "cycle in parent relation", cyc})
	}
	if cyc := findCycle(next, func(e model.Entity) string { return e.WeldParentID }); cyc != nil {
		out = append(out, Violation{AcyclicStructure, "cycle in weld relation", cyc})
	}
	return out
}

func findCycle(state model.WorldState, next func(model.Entity) string) []string {
	for _, e := range state.Entities {
		visited := map[string]bool{e.ID: true}
		cur := e.ID
		for {
			curEntity, ok := state.EntityByID(cur)
			if !ok {
				break
			}
			n := next(*curEntity)
			if n == "" {
				break
			}
			if visited[n] {
				return []string{e.ID, n}
			}
			visited[n] = true
			cur = n
		}
	}
	return nil
}

// checkTickMonotonic: the tick counter advances by exactly one.
func checkTickMonotonic(prev, next model.WorldState) []Violation {
	if next.Tick != prev.Tick+1 {
		return []Violation{{TickMonotonic,
			fmt.Sprintf("tick went from %d to %d, want %d", prev.Tick, next.Tick, prev.Tick+1), nil}}
	}
	return nil
}

// checkNonTeleportation: a root entity's position delta stays within
// 1.5 * |velocity| + floor. The velocity that produced the
// translation is the post-wave one, which neither endpoint state is
// guaranteed to still hold — THRUST raises it above the pre-tick
// value, and an orbit capture zeroes it after translation — so the
// bound takes the larger of the two endpoint magnitudes.
func checkNonTeleportation(prev, next model.WorldState, params Params) []Violation {
	var out []Violation
	for _, after := range next.Entities {
		if !after.IsRoot() {
			continue
		}
		before, ok := prev.EntityByID(after.ID)
		if !ok {
			continue // spawned this tick, nothing to compare against
		}
		if !before.IsRoot() {
			continue
		}
		delta := after.Position.Sub(before.Position).Magnitude()
		speed := fp.Max(before.Velocity.Magnitude(), after.Velocity.Magnitude())
		bound := fp.Add(fp.Mul(fp.FromFloat(1.5), speed), params.NonTeleportFloor)
		if delta > bound {
			out = append(out, Violation{NonTeleportation,
				fmt.Sprintf("position delta %v exceeds bound %v", delta, bound),
				[]string{after.ID}})
		}
	}
	return out
}
