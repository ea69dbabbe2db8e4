package cluster

import (
	"sort"

	"github.com/pthm-cable/longhaul/actions"
	"github.com/pthm-cable/longhaul/config"
	"github.com/pthm-cable/longhaul/model"
)

// Resolve runs the full conflict resolver against one wave: actions
// sharing the same order_index plus the state they'll validate and
// execute against. It partitions the wave into entanglement clusters
// and resolves each independently, then merges their outcomes into a
// single Result with wave-level metrics.
func Resolve(wave []model.Action, state model.WorldState, reg *actions.Registry, tick int64) Result {
	if len(wave) == 0 {
		return Result{}
	}

	clusters := partition(wave, state)
	var out Result
	out.Metrics.ClusterCount = len(clusters)

	for _, c := range clusters {
		executed, voided, m := resolveCluster(c, state, reg, tick)
		out.Executed = append(out.Executed, executed...)
		out.Voided = append(out.Voided, voided...)
		out.Metrics.PermutationsTested += m.permutationsTested
		out.Metrics.SuccessCount += len(executed)
		if m.stalemate {
			out.Metrics.StalemateCount++
		}
		if m.heuristicFallback {
			out.Metrics.HeuristicFallbacks++
		}
	}
	return out
}

type clusterMetrics struct {
	permutationsTested int
	stalemate          bool
	heuristicFallback  bool
}

// resolveCluster runs the stalemate check, the permutation search,
// and the commit pass for a single already-partitioned cluster.
func resolveCluster(c []model.Action, state model.WorldState, reg *actions.Registry, tick int64) ([]model.Action, []Diagnostic, clusterMetrics) {
	if len(c) == 1 {
		if reg.Validate(c[0], state) {
			return c, nil, clusterMetrics{permutationsTested: 1}
		}
		return nil, []Diagnostic{{Action: c[0], Void: VoidInvalid}}, clusterMetrics{permutationsTested: 1}
	}

	if hasMutualExclusion(c, state, reg, tick) {
		voided := make([]Diagnostic, len(c))
		for i, a := range c {
			voided[i] = Diagnostic{Action: a, Void: VoidStalemate}
		}
		return nil, voided, clusterMetrics{stalemate: true}
	}

	order, tested, fellBack := bestOrder(c, state, reg, tick)
	executed, voided := commit(order, state, reg, tick)
	return executed, voided, clusterMetrics{permutationsTested: tested, heuristicFallback: fellBack}
}

// hasMutualExclusion is the stalemate-first check. Every pair in the
// cluster is tested; any mutually exclusive pair voids the whole
// cluster — deliberately, rather than picking a winner: in a
// turn-per-day cadence an arbitrary tie-break is a worse outcome than
// "you both failed".
func hasMutualExclusion(c []model.Action, state model.WorldState, reg *actions.Registry, tick int64) bool {
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if mutuallyExclusive(c[i], c[j], state, reg, tick) {
				return true
			}
		}
	}
	return false
}

// mutuallyExclusive tests one pair: both must be individually valid
// against the initial state, and neither ordering may leave both
// valid. Contests over a unique resource (two LOADs of the same
// content, two WELDs of the same target, a WELD racing an UNWELD of
// the same joint) need no separate name-matching gate: each side's
// own validate already requires the resource unclaimed, so such a
// contest blocks both orderings and the bidirectional test catches
// it, along with the purely structural cases a name gate would miss.
// If either ordering leaves both actions valid, the pair is merely
// order-sensitive, not exclusive.
func mutuallyExclusive(a, b model.Action, state model.WorldState, reg *actions.Registry, tick int64) bool {
	if !reg.Validate(a, state) || !reg.Validate(b, state) {
		return false
	}
	if orderingLeavesBothValid(a, b, state, reg, tick) {
		return false
	}
	if orderingLeavesBothValid(b, a, state, reg, tick) {
		return false
	}
	return true
}

// orderingLeavesBothValid executes first against a virtual copy of
// state, then re-validates second against the resulting state.
func orderingLeavesBothValid(first, second model.Action, state model.WorldState, reg *actions.Registry, tick int64) bool {
	virtual := state.Snapshot()
	if !reg.Validate(first, virtual) {
		return false
	}
	updates := reg.Handle(first, actions.NewContext(tick, virtual))
	virtual.Apply(updates)
	return reg.Validate(second, virtual)
}

// bestOrder is the bounded permutation search. It returns the
// winning order, the number of permutations actually
// tested, and whether the search fell back to the heuristic order
// because the cluster exceeded the permutation bound.
func bestOrder(c []model.Action, state model.WorldState, reg *actions.Registry, tick int64) ([]model.Action, int, bool) {
	bound := config.Cfg().PermutationBound
	if factorial(len(c)) > bound {
		return heuristicOrder(c), 0, true
	}

	var best []model.Action
	bestScore := -1
	tested := 0

	permute(c, func(perm []model.Action) bool {
		tested++
		score := scorePermutation(perm, state, reg, tick)
		if score > bestScore {
			bestScore = score
			best = append([]model.Action(nil), perm...)
		}
		return score == len(c) // stop on first all-valid permutation
	})

	return best, tested, false
}

// scorePermutation simulates perm against a virtual copy of state,
// validating then executing each action in turn, and returns the
// count of actions whose validation passed.
func scorePermutation(perm []model.Action, state model.WorldState, reg *actions.Registry, tick int64) int {
	virtual := state.Snapshot()
	valid := 0
	for _, a := range perm {
		if !reg.Validate(a, virtual) {
			continue
		}
		valid++
		updates := reg.Handle(a, actions.NewContext(tick, virtual))
		virtual.Apply(updates)
	}
	return valid
}

// commit re-executes the winning order against a fresh copy of the
// initial state to derive canonical updates and the final valid set.
// Any action still failing here is voided with DEPENDENCY_FAILED.
func commit(order []model.Action, state model.WorldState, reg *actions.Registry, tick int64) ([]model.Action, []Diagnostic) {
	virtual := state.Snapshot()
	var executed []model.Action
	var voided []Diagnostic
	for _, a := range order {
		if !reg.Validate(a, virtual) {
			voided = append(voided, Diagnostic{Action: a, Void: VoidDependencyFailed})
			continue
		}
		updates := reg.Handle(a, actions.NewContext(tick, virtual))
		virtual.Apply(updates)
		executed = append(executed, a)
	}
	return executed, voided
}

// heuristicOrder implements the permutation-limit fallback: priority
// order, tied-broken by entity_id.
func heuristicOrder(c []model.Action) []model.Action {
	out := append([]model.Action(nil), c...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() < out[j].Priority()
		}
		return out[i].EntityID < out[j].EntityID
	})
	return out
}

// permute calls fn with every permutation of c in turn, stopping early
// if fn returns true.
func permute(c []model.Action, fn func([]model.Action) bool) {
	perm := append([]model.Action(nil), c...)
	if heapPermute(perm, len(perm), fn) {
		return
	}
}

// heapPermute is Heap's algorithm, generating permutations in place.
// Returns true once fn signals early stop.
func heapPermute(a []model.Action, k int, fn func([]model.Action) bool) bool {
	if k == 1 {
		return fn(a)
	}
	for i := 0; i < k; i++ {
		if heapPermute(a, k-1, fn) {
			return true
		}
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
	}
	return false
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
