// Package sim owns the star-system catalog and the simulation world that
// advances it: bodies on fixed Keplerian orbits are positioned analytically
// each tick, free bodies are integrated under pairwise gravity.
package sim

import (
	"strings"

	"stellardrift.space/physics"
)

// Body types
const (
	TypeStar     = "star"
	TypePlanet   = "planet"
	TypeMoon     = "moon"
	TypeAsteroid = "asteroid"
)

// Body is a catalog entry on a fixed Keplerian orbit around its parent.
// Distances are in scene units, periods in simulation seconds, masses in
// game-mass units sized so free-body gravity stays in scene scale.
type Body struct {
	Name       string                  `json:"name"`
	Type       string                  `json:"type"`
	ParentName string                  `json:"parent,omitempty"`
	Radius     float64                 `json:"radius"`
	Mass       float64                 `json:"mass"`
	Elements   physics.OrbitalElements `json:"elements"`
}

// FreeBody is not bound to an orbit; the world integrates it under the
// gravity of every other body.
type FreeBody struct {
	Name     string          `json:"name"`
	Radius   float64         `json:"radius"`
	Mass     float64         `json:"mass"`
	Position physics.Vector3 `json:"pos"`
	Velocity physics.Vector3 `json:"vel"`
}

// DefaultCatalog returns the shipped star system. Parents are listed before
// their children; World relies on that ordering when resolving positions.
func DefaultCatalog() []Body {
	return []Body{
		{Name: "Sol", Type: TypeStar, Radius: 25, Mass: 5.0e12},

		{Name: "Mercury", Type: TypePlanet, ParentName: "Sol", Radius: 1.2, Mass: 1.6e9, Elements: physics.OrbitalElements{
			SemiMajorAxis: 58, Eccentricity: 0.2056, OrbitalPeriod: 88, MeanAnomalyAtEpoch: 0.0, Inclination: 0.12,
		}},
		{Name: "Venus", Type: TypePlanet, ParentName: "Sol", Radius: 2.8, Mass: 2.4e10, Elements: physics.OrbitalElements{
			SemiMajorAxis: 108, Eccentricity: 0.0068, OrbitalPeriod: 225, MeanAnomalyAtEpoch: 1.2, Inclination: 0.06,
		}},
		{Name: "Earth", Type: TypePlanet, ParentName: "Sol", Radius: 3.0, Mass: 2.9e10, Elements: physics.OrbitalElements{
			SemiMajorAxis: 150, Eccentricity: 0.0167, OrbitalPeriod: 365, MeanAnomalyAtEpoch: 2.1,
		}},
		{Name: "Moon", Type: TypeMoon, ParentName: "Earth", Radius: 0.8, Mass: 3.5e8, Elements: physics.OrbitalElements{
			SemiMajorAxis: 9, Eccentricity: 0.0549, OrbitalPeriod: 27.3, Inclination: 0.09,
		}},
		{Name: "Mars", Type: TypePlanet, ParentName: "Sol", Radius: 1.6, Mass: 3.1e9, Elements: physics.OrbitalElements{
			SemiMajorAxis: 228, Eccentricity: 0.0934, OrbitalPeriod: 687, MeanAnomalyAtEpoch: 0.5, Inclination: 0.03,
		}},
		{Name: "Phobos", Type: TypeMoon, ParentName: "Mars", Radius: 0.2, Mass: 5.2e5, Elements: physics.OrbitalElements{
			SemiMajorAxis: 4, OrbitalPeriod: 0.32, Inclination: 0.02,
		}},
		{Name: "Jupiter", Type: TypePlanet, ParentName: "Sol", Radius: 11, Mass: 9.2e11, Elements: physics.OrbitalElements{
			SemiMajorAxis: 779, Eccentricity: 0.0484, OrbitalPeriod: 4331, MeanAnomalyAtEpoch: 3.1, Inclination: 0.02,
		}},
		{Name: "Europa", Type: TypeMoon, ParentName: "Jupiter", Radius: 0.9, Mass: 2.3e8, Elements: physics.OrbitalElements{
			SemiMajorAxis: 21, Eccentricity: 0.009, OrbitalPeriod: 3.55, Inclination: 0.008,
		}},
		{Name: "Saturn", Type: TypePlanet, ParentName: "Sol", Radius: 9.4, Mass: 2.8e11, Elements: physics.OrbitalElements{
			SemiMajorAxis: 1430, Eccentricity: 0.0542, OrbitalPeriod: 10747, MeanAnomalyAtEpoch: 4.2, Inclination: 0.04,
		}},
		{Name: "Uranus", Type: TypePlanet, ParentName: "Sol", Radius: 4.0, Mass: 4.2e10, Elements: physics.OrbitalElements{
			SemiMajorAxis: 2870, Eccentricity: 0.0472, OrbitalPeriod: 30589, MeanAnomalyAtEpoch: 5.3, Inclination: 0.013,
		}},
		{Name: "Neptune", Type: TypePlanet, ParentName: "Sol", Radius: 3.9, Mass: 5.0e10, Elements: physics.OrbitalElements{
			SemiMajorAxis: 4495, Eccentricity: 0.0086, OrbitalPeriod: 59800, MeanAnomalyAtEpoch: 0.8, Inclination: 0.03,
		}},
	}
}

// DefaultFreeBodies returns the drifting objects seeded into the belt
// between Mars and Jupiter.
func DefaultFreeBodies() []FreeBody {
	return []FreeBody{
		{Name: "Ceres", Radius: 0.5, Mass: 4.6e7,
			Position: physics.Vector3{X: 414},
			Velocity: physics.Vector3{Y: 0.9}},
		{Name: "Vesta", Radius: 0.3, Mass: 1.3e7,
			Position: physics.Vector3{X: -250, Y: 250},
			Velocity: physics.Vector3{X: -0.65, Y: -0.65}},
		{Name: "Derelict", Radius: 0.05, Mass: 2.0e3,
			Position: physics.Vector3{X: 180, Z: 6},
			Velocity: physics.Vector3{Y: 1.3}},
	}
}

// FindBody looks up a catalog entry by name, case-insensitively.
func FindBody(bodies []Body, name string) (Body, bool) {
	for _, b := range bodies {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Body{}, false
}

// BodiesByType returns the catalog entries of the given type.
func BodiesByType(bodies []Body, bodyType string) []Body {
	matched := make([]Body, 0, len(bodies))
	for _, b := range bodies {
		if b.Type == bodyType {
			matched = append(matched, b)
		}
	}
	return matched
}
