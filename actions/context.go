// Package actions provides the capability registry: an immutable
// mapping from action kind to a {validate, handler} pair, plus the
// nine canonical handlers themselves. Both validate and handler are
// pure functions of their arguments — neither reads package-level
// state, and handlers never mutate their inputs.
package actions

import (
	"github.com/pthm-cable/longhaul/config"
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// Context is the read-only tick context handlers consult. It is
// constructed fresh per call by whoever drives resolution (the
// cluster resolver during permutation scoring, or the tick pipeline
// during commit) and is never retained across calls. Constants is a
// plain value copy of the derived fixed-point config, not a pointer
// into the package-global — so a handler can never observe a config
// reload mid-resolution.
type Context struct {
	Tick      int64
	State     model.WorldState
	Constants config.DerivedConfig
}

// NewContext builds a Context from the current global configuration.
func NewContext(tick int64, state model.WorldState) Context {
	return Context{Tick: tick, State: state, Constants: config.Cfg().Derived}
}

func (c Context) burnRate() fp.Scalar { return c.Constants.FuelBurnRate }
func (c Context) massPropulsionLoss() fp.Scalar { return c.Constants.MassPropulsionLoss }
func (c Context) maxThrustPerTick() fp.Scalar { return c.Constants.MaxThrustPerTick }
func (c Context) refineEfficiency() fp.Scalar { return c.Constants.RefineEfficiency }
func (c Context) refineMaxBatch() fp.Scalar { return c.Constants.RefineMaxBatch }
