package sim

import (
	"math"
	"testing"

	"stellardrift.space/physics"
)

func TestWorldDeterministicTicks(t *testing.T) {
	first := NewWorld(DefaultCatalog(), DefaultFreeBodies())
	second := NewWorld(DefaultCatalog(), DefaultFreeBodies())

	for i := 0; i < 50; i++ {
		first.Tick(3.0)
		second.Tick(3.0)
	}

	a := first.Snapshot()
	b := second.Snapshot()
	if a.SimTime != b.SimTime {
		t.Fatalf("sim times diverged: %v vs %v", a.SimTime, b.SimTime)
	}
	if len(a.Bodies) != len(b.Bodies) {
		t.Fatalf("body counts diverged: %d vs %d", len(a.Bodies), len(b.Bodies))
	}
	for i := range a.Bodies {
		if a.Bodies[i] != b.Bodies[i] {
			t.Errorf("body %d diverged: %+v vs %+v", i, a.Bodies[i], b.Bodies[i])
		}
	}
}

func TestWorldStarStaysAtOrigin(t *testing.T) {
	w := NewWorld(DefaultCatalog(), nil)
	w.Tick(1000)
	pos, ok := w.Position("Sol")
	if !ok {
		t.Fatal("star missing from position table")
	}
	if pos != (physics.Vector3{}) {
		t.Errorf("star moved to %+v", pos)
	}
}

func TestWorldMoonTracksParent(t *testing.T) {
	w := NewWorld(DefaultCatalog(), nil)
	catalog := w.Catalog()
	moon, ok := FindBody(catalog, "Moon")
	if !ok {
		t.Fatal("Moon not in catalog")
	}

	for _, dt := range []float64{0, 11.3, 47.9, 200.0} {
		if dt > 0 {
			w.Tick(dt)
		}
		moonPos, _ := w.Position("Moon")
		earthPos, _ := w.Position("Earth")
		dist := moonPos.Subtract(earthPos).Magnitude()

		a := moon.Elements.SemiMajorAxis
		e := moon.Elements.Eccentricity
		if dist < a*(1-e)-1e-6 || dist > a*(1+e)+1e-6 {
			t.Errorf("moon-earth distance %.6f outside [%.3f, %.3f]", dist, a*(1-e), a*(1+e))
		}
	}
}

func TestWorldPlanetOnItsOrbit(t *testing.T) {
	w := NewWorld(DefaultCatalog(), nil)
	w.Tick(123.0)

	earth, _ := FindBody(w.Catalog(), "Earth")
	got, _ := w.Position("Earth")
	want := physics.OrbitalPosition(earth.Elements, w.SimTime())
	if got != want {
		t.Errorf("world position %+v differs from solver position %+v", got, want)
	}
}

func TestWorldFreeBodyFallsTowardStar(t *testing.T) {
	// One free body at rest near a lone star must accelerate inward.
	catalog := []Body{{Name: "Sol", Type: TypeStar, Radius: 25, Mass: 5.0e12}}
	free := []FreeBody{{Name: "probe", Mass: 10, Position: physics.Vector3{X: 100}}}

	w := NewWorld(catalog, free)
	start := free[0].Position
	for i := 0; i < 10; i++ {
		w.Tick(1.0)
	}

	snap := w.Snapshot()
	var probe BodyState
	for _, b := range snap.Bodies {
		if b.Name == "probe" {
			probe = b
		}
	}
	if probe.Name == "" {
		t.Fatal("probe missing from snapshot")
	}
	if probe.Position.X >= start.X {
		t.Errorf("probe did not fall toward the star: started at x=%.3f, now %.3f", start.X, probe.Position.X)
	}
	if math.Abs(probe.Position.Y) > 1e-9 || math.Abs(probe.Position.Z) > 1e-9 {
		t.Errorf("probe drifted off-axis: %+v", probe.Position)
	}
}

func TestFindBodyCaseInsensitive(t *testing.T) {
	catalog := DefaultCatalog()
	if _, ok := FindBody(catalog, "eArTh"); !ok {
		t.Error("case-insensitive lookup failed")
	}
	if _, ok := FindBody(catalog, "Niburu"); ok {
		t.Error("found a body that does not exist")
	}
}

func TestBodiesByType(t *testing.T) {
	catalog := DefaultCatalog()
	planets := BodiesByType(catalog, TypePlanet)
	if len(planets) != 8 {
		t.Errorf("expected 8 planets, got %d", len(planets))
	}
	stars := BodiesByType(catalog, TypeStar)
	if len(stars) != 1 || stars[0].Name != "Sol" {
		t.Errorf("unexpected stars: %+v", stars)
	}
}
