// Package physics implements the numeric core of the simulation: 3D vector
// math, pairwise Newtonian gravitation, and a Keplerian orbit solver. It has
// no dependency on the server or rendering layers and every operation is a
// pure function of its arguments.
package physics

import (
	"math"
)

// Vector3 represents a 3D vector. Values are passed and returned by copy;
// no operation mutates its receiver.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Subtract returns the difference of two vectors
func (v Vector3) Subtract(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale returns the vector multiplied by a scalar
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Magnitude returns the magnitude (length) of the vector
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DotProduct returns the dot product of two vectors
func (v Vector3) DotProduct(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// CrossProduct returns the cross product of two vectors
func (v Vector3) CrossProduct(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns the normalized vector (unit length)
func (v Vector3) Normalize() Vector3 {
	mag := v.Magnitude()
	if mag < 1e-10 {
		return Vector3{}
	}
	return Vector3{
		X: v.X / mag,
		Y: v.Y / mag,
		Z: v.Z / mag,
	}
}
