package actions

import (
	"testing"

	"github.com/pthm-cable/longhaul/config"
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

func mustInit(t *testing.T) {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}
}

// Volatiles extraction transfers rate-limited volatiles from a well.
func TestExtractVolatilesScenario(t *testing.T) {
	mustInit(t)
	ship := model.NewShip("ship", fp.Vec2(0, 0))
	ship.Reach = fp.FromInt(500)
	ship.Fuel = fp.FromInt(100)
	well := model.NewResourceWell("well", fp.Vec2(100, 0), fp.FromInt(10000), fp.FromInt(50000))

	state := model.WorldState{Entities: []model.Entity{ship, well}}
	action := model.Action{Kind: model.ActionExtract, EntityID: "ship", OriginID: "well",
		ResourceType: model.ResourceVolatiles, Rate: fp.FromInt(500)}

	if !ValidateExtract(action, state) {
		t.Fatalf("expected EXTRACT to validate")
	}
	updates := HandleExtract(action, NewContext(0, state))
	state.Apply(updates)

	shipAfter, _ := state.EntityByID("ship")
	wellAfter, _ := state.EntityByID("well")
	if shipAfter.Volatiles != fp.FromInt(500) {
		t.Errorf("ship volatiles = %v, want 500", shipAfter.Volatiles)
	}
	if wellAfter.Volatiles != fp.FromInt(9500) {
		t.Errorf("well volatiles = %v, want 9500", wellAfter.Volatiles)
	}
}

// Thrust along +X converts fuel into velocity and sheds mass.
func TestThrustAlongXScenario(t *testing.T) {
	mustInit(t)
	ship := model.NewShip("ship", fp.Vec2(0, 0))
	ship.Fuel = fp.FromInt(100)
	ship.Mass = fp.FromInt(1000)
	ship.Heading = fp.FromInt(0)

	state := model.WorldState{Entities: []model.Entity{ship}}
	action := model.Action{Kind: model.ActionThrust, EntityID: "ship", Magnitude: fp.FromInt(10), Heading: fp.FromInt(0)}

	if !ValidateThrust(action, state) {
		t.Fatalf("expected THRUST to validate")
	}
	updates := HandleThrust(action, NewContext(0, state))
	state.Apply(updates)

	after, _ := state.EntityByID("ship")
	if fp.Abs(fp.Sub(after.Velocity.X, fp.FromInt(10))) > 2 {
		t.Errorf("velocity.X = %v, want ~10", after.Velocity.X)
	}
	if fp.Abs(after.Velocity.Y) > 2 {
		t.Errorf("velocity.Y = %v, want ~0", after.Velocity.Y)
	}
	if after.Fuel != fp.FromInt(90) {
		t.Errorf("fuel = %v, want 90", after.Fuel)
	}
	if after.Mass != fp.FromInt(990) {
		t.Errorf("mass = %v, want 990", after.Mass)
	}
}

// Refine converts volatiles to fuel at the configured efficiency.
func TestRefineScenario(t *testing.T) {
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
	ship := model.NewShip("ship", fp.Vec2(0, 0))
	ship.Volatiles = fp.FromInt(1000)
	ship.Fuel = fp.FromInt(100)
	ship.Mass = fp.FromInt(2000)

	// The embedded default config already sets the 0.8 refine
	// efficiency the scenario assumes.
	state := model.WorldState{Entities: []model.Entity{ship}}
	action := model.Action{Kind: model.ActionRefine, EntityID: "ship", VolatilesAmount: fp.FromInt(500)}

	if !ValidateRefine(action, state) {
		t.Fatalf("expected REFINE to validate")
	}
	updates := HandleRefine(action, NewContext(0, state))
	state.Apply(updates)

	after, _ := state.EntityByID("ship")
	if after.Volatiles != fp.FromInt(500) {
		t.Errorf("volatiles = %v, want 500", after.Volatiles)
	}
	if after.Fuel != fp.FromInt(500) {
		t.Errorf("fuel = %v, want 500", after.Fuel)
	}
	if after.Mass != fp.FromInt(1900) {
		t.Errorf("mass = %v, want 1900", after.Mass)
	}
}

func TestWeldFoldsMassAndUnweldSplitsBack(t *testing.T) {
	mustInit(t)
	a := model.NewShip("a", fp.Vec2(0, 0))
	a.Mass = fp.FromInt(1000)
	a.Fuel = fp.FromInt(1000)
	a.AirlockSealed = true
	b := model.NewShip("b", fp.Vec2(100, 0))
	b.Mass = fp.FromInt(1000)

	state := model.WorldState{Entities: []model.Entity{a, b}}
	a.Reach = fp.FromInt(500)
	state.Entities[0] = a

	weld := model.Action{Kind: model.ActionWeld, EntityID: "a", TargetID: "b"}
	if !ValidateWeld(weld, state) {
		t.Fatalf("expected WELD to validate")
	}
	state.Apply(HandleWeld(weld, NewContext(0, state)))

	aAfter, _ := state.EntityByID("a")
	bAfter, _ := state.EntityByID("b")
	if aAfter.Mass != fp.FromInt(2000) {
		t.Errorf("a.Mass after weld = %v, want 2000", aAfter.Mass)
	}
	if bAfter.WeldParentID != "a" {
		t.Errorf("b.WeldParentID = %q, want a", bAfter.WeldParentID)
	}

	unweld := model.Action{Kind: model.ActionUnweld, EntityID: "a", TargetID: "b"}
	if !ValidateUnweld(unweld, state) {
		t.Fatalf("expected UNWELD to validate")
	}
	state.Apply(HandleUnweld(unweld, NewContext(0, state)))
	aAfter2, _ := state.EntityByID("a")
	bAfter2, _ := state.EntityByID("b")
	if aAfter2.Mass != fp.FromInt(1000) {
		t.Errorf("a.Mass after unweld = %v, want 1000", aAfter2.Mass)
	}
	if bAfter2.WeldParentID != "" {
		t.Errorf("b.WeldParentID after unweld = %q, want empty", bAfter2.WeldParentID)
	}
}

func TestLoadRejectsCycle(t *testing.T) {
	mustInit(t)
	actor := model.NewShip("actor", fp.Vec2(0, 0))
	actor.Reach = fp.FromInt(500)
	container := model.NewShip("container", fp.Vec2(0, 0))
	container.IsContainer = true
	container.ContainerVolume = fp.FromInt(100)
	container.ParentID = "content" // container is (incorrectly) parented to content already

	content := model.NewMineralStore("content", fp.Vec2(0, 0), fp.FromInt(10))
	content.Volume = fp.FromInt(10)

	state := model.WorldState{Entities: []model.Entity{actor, container, content}}
	load := model.Action{Kind: model.ActionLoad, EntityID: "actor", ContentID: "content", ContainerID: "container"}
	if ValidateLoad(load, state) {
		t.Errorf("expected LOAD to reject a cycle")
	}
}
