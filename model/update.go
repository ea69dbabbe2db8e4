package model

import "github.com/pthm-cable/longhaul/fp"

// EntityChanges is a sparse partial entity: every field is a pointer,
// nil meaning "unchanged". Handlers build these directly rather than
// copying a whole Entity and diffing it, so an update's intent is
// explicit at the call site.
type EntityChanges struct {
	ZoomState      *ZoomState
	Position       *fp.Vector2
	Velocity       *fp.Vector2
	Heading        *fp.Scalar
	OrbitTarget    *string
	Mass           *fp.Scalar
	Volume         *fp.Scalar
	AirlockSealed  *bool
	Fuel           *fp.Scalar
	Volatiles      *fp.Scalar
	ParentID       *string
	WeldParentID   *string
	RelativeOffset *fp.Vector2
}

// ApplyTo mutates e in place, overwriting every field c sets.
func (c EntityChanges) ApplyTo(e *Entity) {
	if c.ZoomState != nil {
		e.ZoomState = *c.ZoomState
	}
	if c.Position != nil {
		e.Position = *c.Position
	}
	if c.Velocity != nil {
		e.Velocity = *c.Velocity
	}
	if c.Heading != nil {
		e.Heading = *c.Heading
	}
	if c.OrbitTarget != nil {
		e.OrbitTarget = *c.OrbitTarget
	}
	if c.Mass != nil {
		e.Mass = *c.Mass
	}
	if c.Volume != nil {
		e.Volume = *c.Volume
	}
	if c.AirlockSealed != nil {
		e.AirlockSealed = *c.AirlockSealed
	}
	if c.Fuel != nil {
		e.Fuel = *c.Fuel
	}
	if c.Volatiles != nil {
		e.Volatiles = *c.Volatiles
	}
	if c.ParentID != nil {
		e.ParentID = *c.ParentID
	}
	if c.WeldParentID != nil {
		e.WeldParentID = *c.WeldParentID
	}
	if c.RelativeOffset != nil {
		e.RelativeOffset = *c.RelativeOffset
	}
}

// EntityUpdate is a {id, changes} pair. A Spawned entity denotes a
// spawn: ID must be new and Changes is unused in that case.
type EntityUpdate struct {
	ID      string
	Changes EntityChanges
	Spawned *Entity
}

// UpdateFor builds a non-spawn EntityUpdate for an existing entity id.
func UpdateFor(id string, changes EntityChanges) EntityUpdate {
	return EntityUpdate{ID: id, Changes: changes}
}

// SpawnUpdate builds an EntityUpdate that spawns a brand-new entity.
func SpawnUpdate(e Entity) EntityUpdate {
	return EntityUpdate{ID: e.ID, Spawned: &e}
}

// Helpers for building EntityChanges pointer fields tersely.

func PtrZoom(v ZoomState) *ZoomState { return &v }
func PtrVec(v fp.Vector2) *fp.Vector2 { return &v }
func PtrScalar(v fp.Scalar) *fp.Scalar { return &v }
func PtrString(v string) *string { return &v }
func PtrBool(v bool) *bool { return &v }
