// Package tick drives the wave-based pipeline: group actions into
// waves by order_index, resolve each wave's conflict clusters, bind
// between waves, translate-then-bind once at the end, run the
// zoom-state transition, check invariants, and advance the tick
// counter.
package tick

import (
	"log/slog"
	"sort"

	"github.com/pthm-cable/longhaul/actions"
	"github.com/pthm-cable/longhaul/cluster"
	"github.com/pthm-cable/longhaul/invariants"
	"github.com/pthm-cable/longhaul/maneuver"
	"github.com/pthm-cable/longhaul/model"
	"github.com/pthm-cable/longhaul/telemetry"
	"github.com/pthm-cable/longhaul/zoomstate"
)

// Metrics is one tick's resolution summary, aggregated across every
// wave.
type Metrics struct {
	WaveCount          int
	ClusterCount       int
	PermutationsTested int
	StalemateCount     int
	SuccessCount       int
	HeuristicFallbacks int
	DroppedUnknown     int
	DroppedNoActor     int
	Voided             []cluster.Diagnostic
}

// InvariantError wraps one or more invariant violations discovered
// after a tick, carrying the pre-tick state and the applied action
// list as the black box for debugging. It is the one fatal error the
// core produces; every other rejection (validation, stalemate,
// dependency failure, unknown kind, missing actor) is reported via
// Metrics instead.
type InvariantError struct {
	PreState   model.WorldState
	Actions    []model.Action
	Violations []invariants.Violation
}

func (e *InvariantError) Error() string {
	if len(e.Violations) == 0 {
		return "invariant violation"
	}
	return e.Violations[0].Error()
}

// Driver runs ticks against a registry and an optional metrics
// collector. Collector may be nil; Driver works without telemetry
// wired in (e.g. a ghost projection, which must not pollute the
// canonical run's counters).
type Driver struct {
	Registry  *actions.Registry
	Collector *telemetry.Collector
	Params    invariants.Params
}

// NewDriver builds a Driver with a fresh registry and default
// invariant parameters.
func NewDriver() *Driver {
	return &Driver{Registry: actions.NewRegistry(), Params: invariants.DefaultParams()}
}

// Step runs one full tick: actions grouped into waves, each wave
// resolved and bound, a final translate-then-bind, the zoom-state
// transition, an invariant check, and the tick increment. It returns
// the new state and the tick's metrics, or an *InvariantError if the
// resulting state fails any post-tick invariant.
func (d *Driver) Step(state model.WorldState, actionList []model.Action) (model.WorldState, Metrics, error) {
	next := state.Snapshot()
	waves := groupByOrderIndex(actionList)

	var metrics Metrics
	metrics.WaveCount = len(waves)

	telemetry.Logf("=== Tick %d ===", next.Tick+1)

	for waveIdx, wave := range waves {
		wave = d.dropUnresolvable(wave, next, &metrics)
		result := cluster.Resolve(wave, next, d.Registry, next.Tick)
		for _, a := range result.Executed {
			updates := d.Registry.Handle(a, actions.NewContext(next.Tick, next))
			next.Apply(updates)
		}
		maneuver.Bind(&next)

		metrics.ClusterCount += result.Metrics.ClusterCount
		metrics.PermutationsTested += result.Metrics.PermutationsTested
		metrics.StalemateCount += result.Metrics.StalemateCount
		metrics.SuccessCount += result.Metrics.SuccessCount
		metrics.HeuristicFallbacks += result.Metrics.HeuristicFallbacks
		metrics.Voided = append(metrics.Voided, result.Voided...)

		telemetry.Logf("  wave %d: %d clusters, %d stalemates, %d permutations tested",
			waveIdx, result.Metrics.ClusterCount, result.Metrics.StalemateCount, result.Metrics.PermutationsTested)

		d.Collector.RecordWave(result.Metrics.ClusterCount, result.Metrics.PermutationsTested,
			result.Metrics.StalemateCount, result.Metrics.HeuristicFallbacks)
	}

	maneuver.ApplyManeuver(&next)
	zoomstate.Transition(&next)
	next.Tick = state.Tick + 1

	if violations := invariants.Check(state, next, d.Params); len(violations) > 0 {
		for _, v := range violations {
			slog.Error("invariant_violation", "violation", v)
		}
		return state, metrics, &InvariantError{PreState: state, Actions: actionList, Violations: violations}
	}

	row := telemetry.MetricsRow{
		Tick:               next.Tick,
		ClusterCount:       metrics.ClusterCount,
		PermutationsTested: metrics.PermutationsTested,
		StalemateCount:     metrics.StalemateCount,
		SuccessCount:       metrics.SuccessCount,
		HeuristicFallbacks: metrics.HeuristicFallbacks,
	}
	slog.Info("tick", "metrics", row)
	telemetry.Logf("waves=%d clusters=%d stalemates=%d successes=%d permutations=%d",
		metrics.WaveCount, metrics.ClusterCount, metrics.StalemateCount, metrics.SuccessCount, metrics.PermutationsTested)

	d.Collector.RecordTick(next.Tick)
	return next, metrics, nil
}

// dropUnresolvable filters out actions the resolver cannot even
// consider: an unregistered kind (the boundary layer should have
// vetted it; the core tolerates and drops) and an actor id absent
// from state. Both are counted in metrics but produce no per-action
// diagnostic. The actor check
// runs against the wave's own view of the state, so an actor spawned
// by an earlier wave still resolves.
func (d *Driver) dropUnresolvable(wave []model.Action, state model.WorldState, metrics *Metrics) []model.Action {
	out := wave[:0:0]
	for _, a := range wave {
		if _, ok := d.Registry.Lookup(a.Kind); !ok {
			metrics.DroppedUnknown++
			continue
		}
		if _, ok := state.EntityByID(a.EntityID); !ok {
			metrics.DroppedNoActor++
			continue
		}
		out = append(out, a)
	}
	return out
}

// groupByOrderIndex partitions actionList into waves sorted by
// ascending order_index, preserving each action's original relative
// order within its wave.
func groupByOrderIndex(actionList []model.Action) [][]model.Action {
	if len(actionList) == 0 {
		return nil
	}
	byIndex := make(map[int][]model.Action)
	for _, a := range actionList {
		byIndex[a.OrderIndex] = append(byIndex[a.OrderIndex], a)
	}
	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	out := make([][]model.Action, 0, len(indices))
	for _, idx := range indices {
		out = append(out, byIndex[idx])
	}
	return out
}
