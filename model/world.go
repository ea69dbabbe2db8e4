package model

import "github.com/pthm-cable/longhaul/fp"

// StarSystem describes one of the seeded star systems in the universe.
// The core only ever reads these by id; generation is out of scope.
type StarSystem struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// WorldState is the complete, exclusively-owning snapshot of the
// simulated universe at a given tick. Entities and celestials are
// owned by value here; ParentID and WeldParentID elsewhere are weak
// by-id references into Entities, re-validated every tick rather than
// held as pointers.
type WorldState struct {
	Tick       int64        `yaml:"tick"`
	Seed       string       `yaml:"seed"`
	Systems    []StarSystem `yaml:"systems"`
	Celestials []Celestial  `yaml:"celestials"`
	Entities   []Entity     `yaml:"entities"`
}

// Snapshot returns a deep copy of w suitable for virtual-state
// speculative execution during permutation scoring, or for ghost
// projections. Entity is a pure value type, so copying
// the entity slice copies everything; Celestial nests two slices
// (wormhole endpoints and system ids) that need their own copies.
func (w WorldState) Snapshot() WorldState {
	out := w
	out.Systems = append([]StarSystem(nil), w.Systems...)
	out.Celestials = make([]Celestial, len(w.Celestials))
	for i, c := range w.Celestials {
		c.Endpoints = append([]fp.Vector2(nil), c.Endpoints...)
		c.SystemIDs = append([]string(nil), c.SystemIDs...)
		out.Celestials[i] = c
	}
	out.Entities = append([]Entity(nil), w.Entities...)
	return out
}

// EntityByID returns a pointer into w.Entities for in-place mutation,
// and whether it was found. Callers that need virtual-state isolation
// must call Snapshot first — EntityByID never copies.
func (w *WorldState) EntityByID(id string) (*Entity, bool) {
	for i := range w.Entities {
		if w.Entities[i].ID == id {
			return &w.Entities[i], true
		}
	}
	return nil, false
}

// CelestialByID returns a pointer into w.Celestials, and whether it
// was found.
func (w *WorldState) CelestialByID(id string) (*Celestial, bool) {
	for i := range w.Celestials {
		if w.Celestials[i].ID == id {
			return &w.Celestials[i], true
		}
	}
	return nil, false
}

// SpawnEntity appends e to w.Entities, making it immediately visible
// to subsequent lookups — an entity spawned mid-permutation must be
// addressable by the very next action in the same virtual state.
func (w *WorldState) SpawnEntity(e Entity) {
	w.Entities = append(w.Entities, e)
}

// RemoveEntity deletes the entity with the given id, if present.
func (w *WorldState) RemoveEntity(id string) {
	for i := range w.Entities {
		if w.Entities[i].ID == id {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			return
		}
	}
}

// RootEntities returns every entity with neither a parent nor a
// weld-parent.
func (w WorldState) RootEntities() []Entity {
	var out []Entity
	for _, e := range w.Entities {
		if e.IsRoot() {
			out = append(out, e)
		}
	}
	return out
}

// TotalRootMass sums Mass over every root entity — the quantity mass
// conservation tracks across ticks.
func (w WorldState) TotalRootMass() (total int64) {
	for _, e := range w.Entities {
		if e.IsRoot() {
			total += int64(e.Mass)
		}
	}
	return total
}

// Apply merges a set of EntityUpdates into w, in place. A new id
// spawns an entity; an id matching an existing entity merges the
// update's non-nil Changes fields onto it. Apply is the single place
// both the canonical tick driver and the cluster resolver's virtual
// simulation funnel updates through, so their merge semantics can
// never drift apart.
func (w *WorldState) Apply(updates []EntityUpdate) {
	for _, u := range updates {
		if existing, ok := w.EntityByID(u.ID); ok {
			u.Changes.ApplyTo(existing)
			continue
		}
		// New id: the update must carry a full entity to spawn. Spawn
		// handlers populate every field of Spawned rather than
		// a sparse subset.
		if u.Spawned != nil {
			w.SpawnEntity(*u.Spawned)
		}
	}
}
