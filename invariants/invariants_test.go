package invariants

import (
	"testing"

	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

func TestCheckCleanTransitionHasNoViolations(t *testing.T) {
	prev := model.WorldState{Tick: 0, Entities: []model.Entity{model.NewShip("s1", fp.Vec2(0, 0))}}
	next := prev.Snapshot()
	next.Tick = 1
	if got := Check(prev, next, DefaultParams()); len(got) != 0 {
		t.Errorf("expected no violations, got %+v", got)
	}
}

func TestMassConservationCatchesIncrease(t *testing.T) {
	prev := model.WorldState{Entities: []model.Entity{func() model.Entity {
		e := model.NewShip("s1", fp.Vec2(0, 0))
		e.Mass = fp.FromInt(100)
		return e
	}()}}
	next := prev.Snapshot()
	next.Tick = 1
	next.Entities[0].Mass = fp.FromInt(200)

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, MassConservation) {
		t.Errorf("expected a mass-conservation violation, got %+v", violations)
	}
}

func TestNonNegativeCatchesNegativeFuel(t *testing.T) {
	prev := model.WorldState{Entities: []model.Entity{model.NewShip("s1", fp.Vec2(0, 0))}}
	next := prev.Snapshot()
	next.Tick = 1
	next.Entities[0].Fuel = -1

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, NonNegativeStores) {
		t.Errorf("expected a non-negative-stores violation, got %+v", violations)
	}
}

func TestPositionBindingCatchesDrift(t *testing.T) {
	parent := model.NewShip("parent", fp.Vec2(0, 0))
	child := model.NewMineralStore("child", fp.Vec2(0, 0), fp.FromInt(1))
	child.ParentID = "parent"
	prev := model.WorldState{Entities: []model.Entity{parent, child}}
	next := prev.Snapshot()
	next.Tick = 1
	next.Entities[1].Position = fp.Vec2(fp.FromInt(5), 0)

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, PositionBinding) {
		t.Errorf("expected a position-binding violation, got %+v", violations)
	}
}

func TestAcyclicCatchesParentCycle(t *testing.T) {
	a := model.NewShip("a", fp.Vec2(0, 0))
	a.ParentID = "b"
	b := model.NewShip("b", fp.Vec2(0, 0))
	b.ParentID = "a"
	prev := model.WorldState{Entities: []model.Entity{a, b}}
	next := prev.Snapshot()
	next.Tick = 1

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, AcyclicStructure) {
		t.Errorf("expected an acyclicity violation, got %+v", violations)
	}
}

func TestTickMonotonicCatchesSkip(t *testing.T) {
	prev := model.WorldState{Tick: 5}
	next := prev.Snapshot()
	next.Tick = 7

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, TickMonotonic) {
		t.Errorf("expected a tick-monotonicity violation, got %+v", violations)
	}
}

func TestNonTeleportationCatchesJump(t *testing.T) {
	prev := model.WorldState{Entities: []model.Entity{model.NewShip("s1", fp.Vec2(0, 0))}}
	next := prev.Snapshot()
	next.Tick = 1
	next.Entities[0].Position = fp.Vec2(fp.FromInt(10000), 0)

	violations := Check(prev, next, DefaultParams())
	if !hasInvariant(violations, NonTeleportation) {
		t.Errorf("expected a non-teleportation violation, got %+v", violations)
	}
}

func hasInvariant(violations []Violation, id ID) bool {
	for _, v := range violations {
		if v.Invariant == id {
			return true
		}
	}
	return false
}
