package physics

import (
	"math"
)

// Physical constants
const (
	G     = 6.67430e-11 // gravitational constant, m^3/(kg*s^2)
	Scale = 1e9         // distance scale for mixing real units with scene units; never applied internally
)

// CalculateForce returns the gravitational force exerted on body 1 by body 2,
// pointing from pos1 toward pos2. Coincident positions return the zero vector
// rather than dividing by zero.
func CalculateForce(m1, m2 float64, pos1, pos2 Vector3) Vector3 {
	d := pos2.Subtract(pos1)
	r2 := d.DotProduct(d)
	if r2 == 0 {
		return Vector3{}
	}
	r := math.Sqrt(r2)
	f := G * m1 * m2 / r2
	return d.Scale(f / r)
}

// CalculateAcceleration returns the acceleration of a body at pos1 due to a
// mass m2 at pos2. Same coincident-position guard as CalculateForce.
func CalculateAcceleration(m2 float64, pos1, pos2 Vector3) Vector3 {
	d := pos2.Subtract(pos1)
	r2 := d.DotProduct(d)
	if r2 == 0 {
		return Vector3{}
	}
	r := math.Sqrt(r2)
	a := G * m2 / r2
	return d.Scale(a / r)
}

// OrbitalVelocity returns the circular-orbit speed sqrt(G*m/r) around a mass
// m at radius r. The radius is not validated; r <= 0 yields whatever IEEE-754
// produces.
func OrbitalVelocity(m, r float64) float64 {
	return math.Sqrt(G * m / r)
}
