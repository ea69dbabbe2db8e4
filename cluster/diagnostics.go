package cluster

import (
	"github.com/pthm-cable/longhaul/actions"
	"github.com/pthm-cable/longhaul/model"
)

// Classify returns the diagnostic classification for a pair of
// actions against state. STALEMATE takes precedence over the
// reference-overlap classes: a mutually exclusive pair classifies as
// STALEMATE regardless of which entanglement rule connected it.
func Classify(a, b model.Action, state model.WorldState, reg *actions.Registry, tick int64) Classification {
	if mutuallyExclusive(a, b, state, reg, tick) {
		return ClassStalemate
	}
	return classify(a, b, state)
}

// AssessContestation reports the contestation risk of a drafted
// action against a list of already-queued actions, for UI pre-flight
// before the action is actually submitted. HIGH if a
// mutual-exclusion pair exists between draft and any queued action,
// MEDIUM if their reference sets overlap without exclusion, NONE
// otherwise.
func AssessContestation(draft model.Action, queued []model.Action, state model.WorldState, reg *actions.Registry, tick int64) ContestationRisk {
	risk := RiskNone
	for _, q := range queued {
		if mutuallyExclusive(draft, q, state, reg, tick) {
			return RiskHigh
		}
		if intersects(draft.Refs(), q.Refs()) {
			risk = RiskMedium
		}
	}
	return risk
}
