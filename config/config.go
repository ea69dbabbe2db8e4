// Package config provides configuration loading and access for the
// simulation core: embedded YAML defaults, optionally overridden by a
// user file, with derived fixed-point constants computed once after
// load.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/longhaul/fp"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable constant the resolution core consults.
type Config struct {
	FPScalingFactor           int64   `yaml:"fp_scaling_factor"`
	FuelBurnRate              float64 `yaml:"fuel_burn_rate"`
	MassPropulsionLoss        float64 `yaml:"mass_propulsion_loss"`
	MinimumFuelThreshold      float64 `yaml:"minimum_fuel_threshold"`
	MaxThrustPerTick          float64 `yaml:"max_thrust_per_tick"`
	RefineEfficiency          float64 `yaml:"refine_efficiency"`
	RefineMaxBatch            float64 `yaml:"refine_max_batch"`
	OrbitalConversionConstant float64 `yaml:"orbital_conversion_constant"`
	PermutationBound          int     `yaml:"permutation_bound"`

	// Derived values computed after loading, split from the authored
	// fields above.
	Derived DerivedConfig `yaml:"-"`
}

// DerivedConfig holds the same tunables pre-converted to fp.Scalar so
// hot-path code never repeats the float64->fp.Scalar conversion.
type DerivedConfig struct {
	FuelBurnRate              fp.Scalar
	MassPropulsionLoss        fp.Scalar
	MinimumFuelThreshold      fp.Scalar
	MaxThrustPerTick          fp.Scalar
	RefineEfficiency          fp.Scalar
	RefineMaxBatch            fp.Scalar
	OrbitalConversionConstant fp.Scalar
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.FPScalingFactor != fp.Scale {
		return nil, fmt.Errorf("fp_scaling_factor must be %d, got %d", fp.Scale, cfg.FPScalingFactor)
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates the fp.Scalar values derived from the
// loaded float64 config fields.
func (c *Config) computeDerived() {
	c.Derived.FuelBurnRate = fp.FromFloat(c.FuelBurnRate)
	c.Derived.MassPropulsionLoss = fp.FromFloat(c.MassPropulsionLoss)
	c.Derived.MinimumFuelThreshold = fp.FromFloat(c.MinimumFuelThreshold)
	c.Derived.MaxThrustPerTick = fp.FromFloat(c.MaxThrustPerTick)
	c.Derived.RefineEfficiency = fp.FromFloat(c.RefineEfficiency)
	c.Derived.RefineMaxBatch = fp.FromFloat(c.RefineMaxBatch)
	c.Derived.OrbitalConversionConstant = fp.FromFloat(c.OrbitalConversionConstant)
}

// Clone returns a deep copy with Derived recomputed, so callers can
// mutate authored fields without touching the shared global config.
func (c *Config) Clone() *Config {
	cp := *c
	cp.computeDerived()
	return &cp
}

// Recompute refreshes Derived from the current authored fields. Call
// after mutating authored fields directly (cmd/tune's ApplyToConfig).
func (c *Config) Recompute() {
	c.computeDerived()
}

// WriteYAML writes the config's authored fields to path as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
