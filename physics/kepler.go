package physics

import (
	"math"
)

// keplerIterations is the fixed number of fixed-point passes applied to
// Kepler's equation. Six passes are accurate to double precision for the
// low-to-moderate eccentricities game orbits use; eccentricities approaching
// 1 converge more slowly and retain visible error. Known limitation.
const keplerIterations = 6

// velocityStep is the finite-difference step used by OrbitalVelocityVec.
const velocityStep = 0.001

// Defaults substituted for zero-valued shape fields.
const (
	defaultSemiMajorAxis = 10.0
	defaultPeriod        = 1.0
)

// OrbitalElements describes a closed Keplerian orbit at a reference epoch.
// All angles are in radians. A zero SemiMajorAxis or OrbitalPeriod is
// replaced by the defaults above so a partially filled record still yields a
// usable orbit; nothing else is validated. Eccentricities outside [0, 1)
// are unsupported.
type OrbitalElements struct {
	SemiMajorAxis            float64 `json:"a"`      // distance units
	Eccentricity             float64 `json:"e"`      //
	Inclination              float64 `json:"i"`      // radians
	LongitudeOfAscendingNode float64 `json:"node"`   // Omega, radians
	ArgumentOfPeriapsis      float64 `json:"peri"`   // w, radians
	MeanAnomalyAtEpoch       float64 `json:"m0"`     // radians
	OrbitalPeriod            float64 `json:"period"` // T, time units
}

func (el OrbitalElements) withDefaults() OrbitalElements {
	if el.SemiMajorAxis == 0 {
		el.SemiMajorAxis = defaultSemiMajorAxis
	}
	if el.OrbitalPeriod == 0 {
		el.OrbitalPeriod = defaultPeriod
	}
	return el
}

// solveKepler refines E = M + e*sin(E) by fixed-point iteration seeded at M.
// The iteration count is unconditional: no convergence check, no early exit.
func solveKepler(M, e float64, iterations int) float64 {
	E := M
	for i := 0; i < iterations; i++ {
		E = M + e*math.Sin(E)
	}
	return E
}

// OrbitalPosition returns the position on the orbit at time t, in the
// inertial frame with the central body at the origin. The mean anomaly is
// left unnormalized; the trigonometry downstream is periodic, so any finite
// t is safe.
func OrbitalPosition(el OrbitalElements, t float64) Vector3 {
	el = el.withDefaults()
	e := el.Eccentricity

	M := el.MeanAnomalyAtEpoch + 2.0*math.Pi*t/el.OrbitalPeriod
	E := solveKepler(M, e, keplerIterations)

	// True anomaly and radius from the eccentric anomaly
	nu := 2.0 * math.Atan2(
		math.Sqrt(1.0+e)*math.Sin(E/2.0),
		math.Sqrt(1.0-e)*math.Cos(E/2.0),
	)
	r := el.SemiMajorAxis * (1.0 - e*math.Cos(E))

	// Position in the orbital plane
	xOrb := r * math.Cos(nu)
	yOrb := r * math.Sin(nu)

	// Rotate into the reference frame: argument of periapsis in-plane,
	// tilt by inclination, then swing by the ascending-node longitude.
	cosO := math.Cos(el.LongitudeOfAscendingNode)
	sinO := math.Sin(el.LongitudeOfAscendingNode)
	cosI := math.Cos(el.Inclination)
	sinI := math.Sin(el.Inclination)
	cosW := math.Cos(el.ArgumentOfPeriapsis)
	sinW := math.Sin(el.ArgumentOfPeriapsis)

	x := xOrb*(cosO*cosW-sinO*sinW*cosI) - yOrb*(cosO*sinW+sinO*cosW*cosI)
	y := xOrb*(sinO*cosW+cosO*sinW*cosI) - yOrb*(sinO*sinW-cosO*cosW*cosI)
	z := xOrb*(sinW*sinI) + yOrb*(cosW*sinI)

	return Vector3{X: x, Y: y, Z: z}
}

// OrbitalVelocityVec approximates the orbital velocity at time t by forward
// finite differencing of OrbitalPosition with a fixed step. The error scales
// with the step; this is not a closed-form vis-viva velocity. mu is reserved
// and currently has no effect on the result; the parameter is kept so the
// signature stays stable.
func OrbitalVelocityVec(el OrbitalElements, t, mu float64) Vector3 {
	_ = mu
	p0 := OrbitalPosition(el, t)
	p1 := OrbitalPosition(el, t+velocityStep)
	return p1.Subtract(p0).Scale(1.0 / velocityStep)
}

// CalculatePeriod returns the orbital period for semi-major axis a around a
// body with standard gravitational parameter mu, per Kepler's third law.
func CalculatePeriod(a, mu float64) float64 {
	return 2.0 * math.Pi * math.Sqrt(a*a*a/mu)
}
