package model

import "github.com/pthm-cable/longhaul/fp"

// CelestialKind is the closed alternative over celestial body types.
type CelestialKind string

const (
	CelestialSol      CelestialKind = "SOL"
	CelestialPlanet   CelestialKind = "PLANET"
	CelestialMoon     CelestialKind = "MOON"
	CelestialAsteroid CelestialKind = "ASTEROID"
	CelestialWormhole CelestialKind = "WORMHOLE"
)

// Celestial is a polymorphic celestial body. Only the fields relevant
// to Kind are populated, with zero-value fields simply unused — a flat
// tagged struct rather than an interface hierarchy, since the core
// never dispatches on celestial behaviour beyond the zoom-state
// capture predicate.
type Celestial struct {
	ID   string        `yaml:"id"`
	Name string        `yaml:"name"`
	Kind CelestialKind `yaml:"kind"`

	Position      fp.Vector2 `yaml:"position"`
	Mass          fp.Scalar  `yaml:"mass"`
	Radius        fp.Scalar  `yaml:"radius"`
	CaptureRadius fp.Scalar  `yaml:"capture_radius"`
	Z             int        `yaml:"z"`

	// PLANET
	ParentSolID string `yaml:"parent_sol_id,omitempty"`

	// MOON
	ParentPlanetID string    `yaml:"parent_planet_id,omitempty"`
	OrbitAngle     fp.Scalar `yaml:"orbit_angle,omitempty"`
	OrbitSpeed     fp.Scalar `yaml:"orbit_speed,omitempty"`
	OrbitRadius    fp.Scalar `yaml:"orbit_radius,omitempty"`

	// ASTEROID
	LinearVelocity fp.Vector2 `yaml:"linear_velocity,omitempty"`

	// WORMHOLE
	Endpoints []fp.Vector2 `yaml:"endpoints,omitempty"`
	SystemIDs []string     `yaml:"system_ids,omitempty"`
}
