// Package cluster implements the conflict resolver: entanglement
// clustering, a stalemate-first mutual-exclusion check, a bounded
// permutation search over virtual state, commit against a fresh copy,
// and the classification/contestation-risk diagnostic surface.
// Clusters are disjoint by construction, so each resolves
// independently of the others.
package cluster

import "github.com/pthm-cable/longhaul/model"

// VoidReason names why an action did not make it into the executed
// list.
type VoidReason string

const (
	VoidNone             VoidReason = ""
	VoidInvalid          VoidReason = "INVALID"
	VoidStalemate        VoidReason = "STALEMATE"
	VoidDependencyFailed VoidReason = "DEPENDENCY_FAILED"
)

// Classification names the entanglement relationship between a pair
// of actions, for diagnostics and UI pre-flight.
type Classification string

const (
	ClassNone               Classification = "NONE"
	ClassSharedTarget       Classification = "SHARED_TARGET"
	ClassActorTargetDuality Classification = "ACTOR_TARGET_DUALITY"
	ClassContainmentChain   Classification = "CONTAINMENT_CHAIN"
	ClassStalemate          Classification = "STALEMATE"
)

// ContestationRisk is the pre-flight risk level of a drafted action
// against a list of already-queued actions.
type ContestationRisk string

const (
	RiskNone   ContestationRisk = "NONE"
	RiskMedium ContestationRisk = "MEDIUM"
	RiskHigh   ContestationRisk = "HIGH"
)

// Diagnostic records the outcome for a single action after resolution:
// whether it executed, and if not, why.
type Diagnostic struct {
	Action model.Action
	Void   VoidReason
}

// Metrics summarizes one wave's resolution. StalemateCount counts
// whole clusters voided by the mutual-exclusion check; SuccessCount
// counts individual actions that made the execution list.
type Metrics struct {
	ClusterCount       int
	PermutationsTested int
	StalemateCount     int
	SuccessCount       int
	HeuristicFallbacks int
}

// Result is the resolver's output for one wave: the ordered execution
// list, the voided actions with reasons, and per-wave metrics.
type Result struct {
	Executed []model.Action
	Voided   []Diagnostic
	Metrics  Metrics
}
