package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Collector wraps the Prometheus counters/gauges this module exposes.
// It takes a prometheus.Registerer at construction time rather than
// registering against the global default registry, so that tests can
// build many independent tick.Drivers without metric-name collisions
// across a shared global registry.
type Collector struct {
	wavesResolved      prometheus.Counter
	clustersResolved   prometheus.Counter
	stalematesVoided   prometheus.Counter
	permutationsTested prometheus.Counter
	heuristicFallbacks prometheus.Counter
	tickCounter        prometheus.Gauge
}

// NewCollector builds a Collector and registers its metrics against reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		wavesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "longhaul_waves_resolved_total",
			Help: "Number of wave resolutions run by the cluster resolver.",
		}),
		clustersResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "longhaul_clusters_resolved_total",
			Help: "Number of entanglement clusters resolved.",
		}),
		stalematesVoided: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "longhaul_stalemates_voided_total",
			Help: "Number of clusters voided with kind STALEMATE.",
		}),
		permutationsTested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "longhaul_permutations_tested_total",
			Help: "Number of permutations scored during the success maximizer search.",
		}),
		heuristicFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "longhaul_heuristic_fallbacks_total",
			Help: "Number of clusters that exceeded the permutation bound and fell back to the priority heuristic.",
		}),
		tickCounter: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "longhaul_tick",
			Help: "Most recent tick number processed.",
		}),
	}
	reg.MustRegister(c.wavesResolved, c.clustersResolved, c.stalematesVoided,
		c.permutationsTested, c.heuristicFallbacks, c.tickCounter)
	return c
}

// RecordWave folds one wave's resolution metrics into the collector.
func (c *Collector) RecordWave(clusterCount, permutationsTested, stalemateCount, heuristicFallbacks int) {
	if c == nil {
		return
	}
	c.wavesResolved.Inc()
	c.clustersResolved.Add(float64(clusterCount))
	c.stalematesVoided.Add(float64(stalemateCount))
	c.permutationsTested.Add(float64(permutationsTested))
	c.heuristicFallbacks.Add(float64(heuristicFallbacks))
}

// RecordTick sets the current tick gauge.
func (c *Collector) RecordTick(tick int64) {
	if c == nil {
		return
	}
	c.tickCounter.Set(float64(tick))
}
