package model

import "github.com/pthm-cable/longhaul/fp"

// ActionKind is the closed alternative over the action set.
type ActionKind string

const (
	ActionThrust        ActionKind = "THRUST"
	ActionExtract       ActionKind = "EXTRACT"
	ActionRefine        ActionKind = "REFINE"
	ActionLoad          ActionKind = "LOAD"
	ActionUnload        ActionKind = "UNLOAD"
	ActionWeld          ActionKind = "WELD"
	ActionUnweld        ActionKind = "UNWELD"
	ActionSealAirlock   ActionKind = "SEAL_AIRLOCK"
	ActionUnsealAirlock ActionKind = "UNSEAL_AIRLOCK"
)

// Action is a tagged variant over the full action set. EntityID is
// the actor for every kind. PlayerID and OrderIndex are common
// metadata; the rest are variant-specific and simply left zero-valued
// for kinds that don't use them.
type Action struct {
	Kind       ActionKind `yaml:"kind"`
	EntityID   string     `yaml:"entity_id"`
	PlayerID   string     `yaml:"player_id,omitempty"`
	OrderIndex int        `yaml:"order_index"`

	// THRUST
	Magnitude fp.Scalar `yaml:"magnitude,omitempty"`
	Heading   fp.Scalar `yaml:"heading,omitempty"`

	// EXTRACT
	ResourceType ResourceType `yaml:"resource_type,omitempty"`
	Rate         fp.Scalar    `yaml:"rate,omitempty"`
	OriginID     string       `yaml:"origin_id,omitempty"`
	TargetPoint  *fp.Vector2  `yaml:"target_point,omitempty"`

	// REFINE
	VolatilesAmount fp.Scalar `yaml:"volatiles_amount,omitempty"`

	// LOAD / UNLOAD
	ContentID   string      `yaml:"content_id,omitempty"`
	ContainerID string      `yaml:"container_id,omitempty"`
	NewPosition *fp.Vector2 `yaml:"new_position,omitempty"`

	// WELD / UNWELD
	TargetID string `yaml:"target_id,omitempty"`
}

// Refs returns the deduplicated, deterministically ordered set of
// entity ids referenced by an action: the actor plus every
// variant-specific target id it carries. Used by entanglement
// clustering.
func (a Action) Refs() []string {
	refs := []string{a.EntityID}
	add := func(id string) {
		if id == "" {
			return
		}
		refs = append(refs, id)
	}
	add(a.OriginID)
	add(a.ContentID)
	add(a.ContainerID)
	add(a.TargetID)
	return dedupe(refs)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Priority returns the stable heuristic-order priority used as a
// fallback when a cluster exceeds the permutation search bound:
// UNSEAL < UNWELD < UNLOAD < SEAL < WELD < LOAD < EXTRACT < REFINE <
// THRUST.
func (a Action) Priority() int {
	switch a.Kind {
	case ActionUnsealAirlock:
		return 0
	case ActionUnweld:
		return 1
	case ActionUnload:
		return 2
	case ActionSealAirlock:
		return 3
	case ActionWeld:
		return 4
	case ActionLoad:
		return 5
	case ActionExtract:
		return 6
	case ActionRefine:
		return 7
	case ActionThrust:
		return 8
	default:
		return 9
	}
}
