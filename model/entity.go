// Package model holds the pure data types shared by every other
// package in the core: entities, celestial bodies, world state,
// actions, and the update records handlers produce. Nothing in this
// package reads global state or allocates behind the caller's back;
// construction is always via plain functions returning populated
// structs.
package model

import "github.com/pthm-cable/longhaul/fp"

// Kind is the entity's role. A fixed, closed alternative.
type Kind string

const (
	KindShip         Kind = "SHIP"
	KindResourceWell Kind = "RESOURCE_WELL"
	KindMineralStore Kind = "MINERAL_STORE"
)

// ZoomState is an entity's current rendering/interaction scale.
type ZoomState string

const (
	ZoomSpace   ZoomState = "SPACE"
	ZoomOrbit   ZoomState = "ORBIT"
	ZoomSurface ZoomState = "SURFACE"
)

// ResourceType distinguishes the two things EXTRACT and REFINE move.
type ResourceType string

const (
	ResourceVolatiles ResourceType = "VOLATILES"
	ResourceMinerals  ResourceType = "MINERALS"
)

// Entity is the mobile/interactable object: ships, resource wells, and
// mineral stores. Total entity mass is the Mass field alone —
// contained/welded child mass is already folded into the parent's
// Mass; the child's own Mass field is retained for separation
// bookkeeping (LOAD/UNLOAD, WELD/UNWELD) but never summed at the
// world level.
type Entity struct {
	ID       string `yaml:"id"`
	Kind     Kind   `yaml:"kind"`
	PlayerID string `yaml:"player_id,omitempty"`

	ZoomState   ZoomState  `yaml:"zoom_state"`
	Position    fp.Vector2 `yaml:"position"`
	Velocity    fp.Vector2 `yaml:"velocity"`
	Heading     fp.Scalar  `yaml:"heading"` // fixed-point degrees
	Thrust      fp.Scalar  `yaml:"thrust"`
	Reach       fp.Scalar  `yaml:"reach"`
	OrbitTarget string     `yaml:"orbit_target,omitempty"`

	Mass          fp.Scalar `yaml:"mass"`
	Volume        fp.Scalar `yaml:"volume"`
	AirlockSealed bool      `yaml:"airlock_sealed"`

	Fuel      fp.Scalar `yaml:"fuel"`
	Volatiles fp.Scalar `yaml:"volatiles"`

	ParentID        string     `yaml:"parent_id,omitempty"`
	WeldParentID    string     `yaml:"weld_parent_id,omitempty"`
	RelativeOffset  fp.Vector2 `yaml:"relative_offset"`
	IsContainer     bool       `yaml:"is_container"`
	ContainerVolume fp.Scalar  `yaml:"container_volume"`

	OpticLevel fp.Scalar `yaml:"optic_level"`
}

// IsRoot reports whether e has neither a parent nor a weld-parent —
// the only kind of entity translated by velocity.
func (e Entity) IsRoot() bool {
	return e.ParentID == "" && e.WeldParentID == ""
}

// Clone returns a deep copy of e. Every field is a value type except
// the three nested fp.Vector2 fields (Position, Velocity,
// RelativeOffset), which are themselves value types,
// so a plain struct copy already deep-copies everything — this method
// exists so callers (notably the cluster resolver's virtual-state
// discipline) have one explicit, discoverable place documenting that
// fact instead of relying on accidental value semantics.
func (e Entity) Clone() Entity {
	return e
}

// NewShip is a builder-style constructor for a SHIP entity: a
// populated struct with sensible defaults rather than requiring the
// caller to fill in every field.
func NewShip(id string, position fp.Vector2) Entity {
	return Entity{
		ID:        id,
		Kind:      KindShip,
		ZoomState: ZoomSpace,
		Position:  position,
		Reach:     fp.FromInt(500),
	}
}

// NewResourceWell is a builder-style constructor for a RESOURCE_WELL entity.
func NewResourceWell(id string, position fp.Vector2, volatiles, mass fp.Scalar) Entity {
	return Entity{
		ID:        id,
		Kind:      KindResourceWell,
		ZoomState: ZoomSpace,
		Position:  position,
		Volatiles: volatiles,
		Mass:      mass,
	}
}

// NewMineralStore is a builder-style constructor for a spawned
// MINERAL_STORE entity, as produced by EXTRACT MINERALS.
func NewMineralStore(id string, position fp.Vector2, mass fp.Scalar) Entity {
	return Entity{
		ID:        id,
		Kind:      KindMineralStore,
		ZoomState: ZoomSpace,
		Position:  position,
		Mass:      mass,
	}
}
