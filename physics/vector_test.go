package physics

import (
	"math"
	"testing"
)

func TestVectorOperations(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: -4, Y: 5, Z: 0.5}

	if got := a.Add(b); got != (Vector3{X: -3, Y: 7, Z: 3.5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Subtract(b); got != (Vector3{X: 5, Y: -3, Z: 2.5}) {
		t.Errorf("Subtract = %+v", got)
	}
	if got := a.Scale(-2); got != (Vector3{X: -2, Y: -4, Z: -6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.DotProduct(b); got != -4+10+1.5 {
		t.Errorf("DotProduct = %v", got)
	}
	if got := a.CrossProduct(a); got != (Vector3{}) {
		t.Errorf("self cross product = %+v, want zero", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector3{X: 3, Y: 4}
	n := v.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("normalized magnitude = %v", n.Magnitude())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("normalized = %+v, want {0.6 0.8 0}", n)
	}

	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("zero vector normalized to %+v", got)
	}
}
