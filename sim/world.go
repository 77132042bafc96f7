package sim

import (
	"sync"

	"stellardrift.space/physics"
)

// BodyState is one body's entry in a Snapshot.
type BodyState struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Radius   float64         `json:"radius"`
	Position physics.Vector3 `json:"pos"`
}

// Snapshot is a consistent view of the world at one simulation time.
type Snapshot struct {
	SimTime float64     `json:"t"`
	Bodies  []BodyState `json:"bodies"`
}

// World advances a star system on a simulated clock. Catalog bodies are
// positioned analytically from their orbital elements every tick; free
// bodies are integrated under the gravity of everything else. All methods
// are safe for concurrent use.
type World struct {
	mu        sync.RWMutex
	bodies    []Body
	free      []FreeBody
	simTime   float64
	positions map[string]physics.Vector3
}

// NewWorld builds a world from a catalog and a set of free bodies and
// resolves initial positions at simulation time zero. The catalog must list
// parents before their children.
func NewWorld(bodies []Body, free []FreeBody) *World {
	w := &World{
		bodies:    append([]Body(nil), bodies...),
		free:      append([]FreeBody(nil), free...),
		positions: make(map[string]physics.Vector3, len(bodies)),
	}
	w.resolvePositions()
	return w
}

// resolvePositions recomputes every catalog body's position at the current
// simulation time. Caller must hold the write lock (or own the world
// exclusively, as in NewWorld).
func (w *World) resolvePositions() {
	for _, b := range w.bodies {
		if b.Type == TypeStar {
			w.positions[b.Name] = physics.Vector3{}
			continue
		}
		pos := physics.OrbitalPosition(b.Elements, w.simTime)
		if b.ParentName != "" {
			pos = pos.Add(w.positions[b.ParentName])
		}
		w.positions[b.Name] = pos
	}
}

// integrateFree advances the free bodies by dt using semi-implicit Euler.
// Accelerations are accumulated from current positions before any body
// moves, so the update order does not matter.
func (w *World) integrateFree(dt float64) {
	accels := make([]physics.Vector3, len(w.free))
	for i := range w.free {
		acc := physics.Vector3{}
		for _, b := range w.bodies {
			acc = acc.Add(physics.CalculateAcceleration(b.Mass, w.free[i].Position, w.positions[b.Name]))
		}
		for j := range w.free {
			if j == i {
				continue
			}
			acc = acc.Add(physics.CalculateAcceleration(w.free[j].Mass, w.free[i].Position, w.free[j].Position))
		}
		accels[i] = acc
	}
	for i := range w.free {
		w.free[i].Velocity = w.free[i].Velocity.Add(accels[i].Scale(dt))
		w.free[i].Position = w.free[i].Position.Add(w.free[i].Velocity.Scale(dt))
	}
}

// Tick advances the simulation clock by dt seconds and updates every body.
func (w *World) Tick(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.simTime += dt
	w.resolvePositions()
	w.integrateFree(dt)
}

// SimTime returns the current simulation time in seconds.
func (w *World) SimTime() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.simTime
}

// Catalog returns a copy of the catalog bodies.
func (w *World) Catalog() []Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Body(nil), w.bodies...)
}

// Position returns the current position of a catalog body by name.
func (w *World) Position(name string) (physics.Vector3, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	pos, ok := w.positions[name]
	return pos, ok
}

// Snapshot returns the current state of every body, catalog and free alike.
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	states := make([]BodyState, 0, len(w.bodies)+len(w.free))
	for _, b := range w.bodies {
		states = append(states, BodyState{
			Name:     b.Name,
			Type:     b.Type,
			Radius:   b.Radius,
			Position: w.positions[b.Name],
		})
	}
	for _, f := range w.free {
		states = append(states, BodyState{
			Name:     f.Name,
			Type:     TypeAsteroid,
			Radius:   f.Radius,
			Position: f.Position,
		})
	}
	return Snapshot{SimTime: w.simTime, Bodies: states}
}
