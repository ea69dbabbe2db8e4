package tick

import (
	"reflect"
	"testing"

	"github.com/pthm-cable/longhaul/config"
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

func mustInit(t *testing.T) {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init: %v", err)
	}
}

func TestStepIncrementsTick(t *testing.T) {
	mustInit(t)
	d := NewDriver()
	state := model.WorldState{Tick: 0, Entities: []model.Entity{model.NewShip("s1", fp.Vec2(0, 0))}}

	next, _, err := d.Step(state, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if next.Tick != 1 {
		t.Errorf("tick = %d, want 1", next.Tick)
	}
}

// Sequential integrity: an action in wave 1 must see wave 0's
// already-applied and bound effects.
func TestStepSequentialIntegrityAcrossWaves(t *testing.T) {
	mustInit(t)
	d := NewDriver()

	ship := model.NewShip("ship", fp.Vec2(0, 0))
	ship.Fuel = fp.FromInt(100)
	ship.Mass = fp.FromInt(1000)
	well := model.NewResourceWell("well", fp.Vec2(50, 0), fp.FromInt(1000), fp.FromInt(5000))
	state := model.WorldState{Entities: []model.Entity{ship, well}}

	extract := model.Action{Kind: model.ActionExtract, EntityID: "ship", OriginID: "well",
		ResourceType: model.ResourceVolatiles, Rate: fp.FromInt(100), OrderIndex: 0}
	refine := model.Action{Kind: model.ActionRefine, EntityID: "ship", VolatilesAmount: fp.FromInt(100), OrderIndex: 1}

	next, metrics, err := d.Step(state, []model.Action{extract, refine})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if metrics.WaveCount != 2 {
		t.Errorf("wave count = %d, want 2", metrics.WaveCount)
	}

	after, _ := next.EntityByID("ship")
	if after.Volatiles != 0 {
		t.Errorf("expected REFINE to consume the extracted volatiles, got %v remaining", after.Volatiles)
	}
	if len(metrics.Voided) != 0 {
		t.Errorf("expected no voided actions, got %+v", metrics.Voided)
	}
}

func TestStepWithNoActionsJustAdvancesTick(t *testing.T) {
	mustInit(t)
	d := NewDriver()
	state := model.WorldState{Tick: 5}
	next, metrics, err := d.Step(state, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if next.Tick != 6 {
		t.Errorf("tick = %d, want 6", next.Tick)
	}
	if metrics.WaveCount != 0 {
		t.Errorf("wave count = %d, want 0", metrics.WaveCount)
	}
}

// Thrust from rest through a whole tick: the post-thrust velocity is
// what translates the ship, so the tick must complete without an
// invariant error and the ship must end up displaced by that velocity.
func TestStepThrustFromRestTranslatesWithoutViolation(t *testing.T) {
	mustInit(t)
	d := NewDriver()

	ship := model.NewShip("ship", fp.Vec2(0, 0))
	ship.Fuel = fp.FromInt(100)
	ship.Mass = fp.FromInt(1000)
	state := model.WorldState{Entities: []model.Entity{ship}}

	thrust := model.Action{Kind: model.ActionThrust, EntityID: "ship", Magnitude: fp.FromInt(10), Heading: fp.FromInt(0)}
	next, _, err := d.Step(state, []model.Action{thrust})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	after, _ := next.EntityByID("ship")
	if fp.Abs(fp.Sub(after.Position.X, fp.FromInt(10))) > 2 {
		t.Errorf("position.X = %v, want ~10", after.Position.X)
	}
}

// Same state and action list must produce bit-identical output, tick
// after tick.
func TestStepDeterministicOverManyTicks(t *testing.T) {
	mustInit(t)

	run := func() model.WorldState {
		ship := model.NewShip("ship", fp.Vec2(0, 0))
		ship.Fuel = fp.FromInt(100)
		ship.Mass = fp.FromInt(5000)
		well := model.NewResourceWell("well", fp.Vec2(100, 0), fp.FromInt(10000), fp.FromInt(50000))
		state := model.WorldState{Seed: "x", Entities: []model.Entity{ship, well}}

		perTick := []model.Action{
			{Kind: model.ActionExtract, EntityID: "ship", OriginID: "well",
				ResourceType: model.ResourceVolatiles, Rate: fp.FromInt(100), OrderIndex: 0},
			{Kind: model.ActionRefine, EntityID: "ship", VolatilesAmount: fp.FromInt(100), OrderIndex: 1},
			{Kind: model.ActionThrust, EntityID: "ship", Magnitude: fp.FromInt(5), Heading: fp.FromInt(90), OrderIndex: 2},
		}

		d := NewDriver()
		for i := 0; i < 25; i++ {
			next, _, err := d.Step(state, perTick)
			if err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
			state = next
		}
		return state
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replaying the same inputs diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// Permuting the submission order of actions belonging to two
// disjoint clusters produces an identical final state.
func TestStepDisjointClustersCommute(t *testing.T) {
	mustInit(t)

	base := func() model.WorldState {
		shipA := model.NewShip("shipA", fp.Vec2(0, 0))
		shipA.Fuel = fp.FromInt(100)
		shipA.Mass = fp.FromInt(1000)
		shipB := model.NewShip("shipB", fp.Vec2(fp.FromInt(100000), 0))
		shipB.Fuel = fp.FromInt(100)
		shipB.Mass = fp.FromInt(1000)
		return model.WorldState{Entities: []model.Entity{shipA, shipB}}
	}

	thrustA := model.Action{Kind: model.ActionThrust, EntityID: "shipA", Magnitude: fp.FromInt(10), Heading: fp.FromInt(0)}
	thrustB := model.Action{Kind: model.ActionThrust, EntityID: "shipB", Magnitude: fp.FromInt(10), Heading: fp.FromInt(180)}

	d := NewDriver()
	forward, _, err := d.Step(base(), []model.Action{thrustA, thrustB})
	if err != nil {
		t.Fatalf("Step forward order: %v", err)
	}
	reversed, _, err := d.Step(base(), []model.Action{thrustB, thrustA})
	if err != nil {
		t.Fatalf("Step reversed order: %v", err)
	}
	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("disjoint clusters did not commute:\nforward:  %+v\nreversed: %+v", forward, reversed)
	}
}

// Unknown kinds and missing actors are dropped, not resolved and not
// fatal.
func TestStepDropsUnknownKindAndMissingActor(t *testing.T) {
	mustInit(t)
	d := NewDriver()

	ship := model.NewShip("ship", fp.Vec2(0, 0))
	state := model.WorldState{Entities: []model.Entity{ship}}

	unknown := model.Action{Kind: "WARP", EntityID: "ship"}
	noActor := model.Action{Kind: model.ActionSealAirlock, EntityID: "ghost"}

	next, metrics, err := d.Step(state, []model.Action{unknown, noActor})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if next.Tick != 1 {
		t.Errorf("tick = %d, want 1", next.Tick)
	}
	if metrics.DroppedUnknown != 1 {
		t.Errorf("DroppedUnknown = %d, want 1", metrics.DroppedUnknown)
	}
	if metrics.DroppedNoActor != 1 {
		t.Errorf("DroppedNoActor = %d, want 1", metrics.DroppedNoActor)
	}
	if len(metrics.Voided) != 0 {
		t.Errorf("dropped actions should not produce diagnostics, got %+v", metrics.Voided)
	}
}

func TestStepZoomTransitionCapturesAfterTranslate(t *testing.T) {
	mustInit(t)
	d := NewDriver()

	ship := model.NewShip("ship", fp.Vec2(fp.FromInt(20), 0))
	ship.Velocity = fp.Vec2(fp.FromInt(-15), 0)
	state := model.WorldState{
		Entities:   []model.Entity{ship},
		Celestials: []model.Celestial{{ID: "p1", Kind: model.CelestialPlanet, Position: fp.Vec2(0, 0), CaptureRadius: fp.FromInt(10)}},
	}

	next, _, err := d.Step(state, nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	after, _ := next.EntityByID("ship")
	if after.ZoomState != model.ZoomOrbit {
		t.Errorf("zoom state = %v, want ORBIT after translating into capture radius", after.ZoomState)
	}
}
