// Command tune runs a CMA-ES search over the core's configured
// constants: it looks for refine-efficiency / propulsion-loss
// combinations that keep simulated fuel economy within a target band
// across seeded action queues. This is an offline tool outside the
// core's tick-time contract.
package main

import (
	"github.com/pthm-cable/longhaul/config"
)

// ParamSpec defines a single optimizable config constant.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the set of all optimizable parameters in a fixed
// order: config fields are assigned explicitly in ApplyToConfig
// rather than addressed through reflection.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector returns the two constants worth tuning against fuel
// economy.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "refine_efficiency", Min: 0.50, Max: 0.95, Default: 0.80},
			{Name: "mass_propulsion_loss", Min: 0.10, Max: 3.00, Default: 1.00},
		},
	}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values onto cfg and recomputes
// its derived constants. The evaluator passes the global config here,
// so each evaluation's values are what the tick driver reads.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.RefineEfficiency = clamped[0]
	cfg.MassPropulsionLoss = clamped[1]
	cfg.Recompute()
}
