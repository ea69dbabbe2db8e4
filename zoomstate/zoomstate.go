// Package zoomstate implements the SPACE→ORBIT capture transition.
// ORBIT→SURFACE and ORBIT→SPACE do not exist yet: entities only ever
// walk forward into orbit, never back out.
package zoomstate

import (
	"github.com/pthm-cable/longhaul/fp"
	"github.com/pthm-cable/longhaul/model"
)

// Transition scans every SPACE entity against the system's planets in
// celestial-list order and captures it into ORBIT around the first
// planet whose capture radius it has entered, zeroing velocity on
// capture. Entities already in ORBIT or SURFACE are left untouched.
func Transition(state *model.WorldState) {
	for i := range state.Entities {
		e := &state.Entities[i]
		if e.ZoomState != model.ZoomSpace {
			continue
		}
		for _, c := range state.Celestials {
			if c.Kind != model.CelestialPlanet {
				continue
			}
			distSq := fp.DistanceSq(e.Position, c.Position)
			if distSq <= fp.Mul(c.CaptureRadius, c.CaptureRadius) {
				e.ZoomState = model.ZoomOrbit
				e.OrbitTarget = c.ID
				e.Velocity = fp.Vec2(0, 0)
				break
			}
		}
	}
}
