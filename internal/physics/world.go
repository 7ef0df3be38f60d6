// Package physics ties bodies, force generators and the fixed-timestep loop together.
package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"

	"physics-engine/internal/logger"
	"physics-engine/internal/physics/body"
	"physics-engine/internal/physics/forces"
)

// World owns a body list, a force registry and one shared gravity generator. Bodies are
// referenced, not owned. A World is not safe for concurrent use.
type World struct {
	fixedDt  float32
	gravity  *forces.Gravity
	registry *forces.Registry
	bodies   []*body.Rigidbody
	log      *logger.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger makes the world log body changes to l.
func WithLogger(l *logger.Logger) Option {
	return func(w *World) { w.log = l }
}

// NewWorld returns an empty world that advances by fixedDt seconds per step and pulls
// every added body with gravity.
func NewWorld(fixedDt float32, gravity rl.Vector2, opts ...Option) *World {
	w := &World{
		fixedDt:  fixedDt,
		gravity:  forces.NewGravity(gravity),
		registry: forces.NewRegistry(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddBody appends rb and registers the world's gravity for it. Order is preserved and
// determines integration order.
func (w *World) AddBody(rb *body.Rigidbody) {
	w.bodies = append(w.bodies, rb)
	w.registry.Register(rb, w.gravity)
	w.log.Debugf("physics: added body %d at (%.3f, %.3f) mass=%.3f", len(w.bodies)-1, rb.Position.X, rb.Position.Y, rb.Mass())
}

// RemoveBody drops rb and every force registration that targets it. It reports whether
// rb was in the world.
func (w *World) RemoveBody(rb *body.Rigidbody) bool {
	for i, b := range w.bodies {
		if b != rb {
			continue
		}
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
		n := w.registry.UnregisterBody(rb)
		w.log.Debugf("physics: removed body %d and %d registrations", i, n)
		return true
	}
	return false
}

// Step advances the world by exactly one fixed step. dt is ignored: there is no
// accumulator, so a slow frame simply simulates less time.
func (w *World) Step(dt float32) {
	w.FixedStep()
}

// FixedStep applies every registered force, then integrates each body in insertion order
// by the fixed timestep.
func (w *World) FixedStep() {
	w.registry.UpdateForces(w.fixedDt)
	for _, b := range w.bodies {
		b.Integrate(w.fixedDt)
	}
}

func (w *World) FixedDt() float32 { return w.fixedDt }

// Gravity returns the acceleration applied to every body.
func (w *World) Gravity() rl.Vector2 { return w.gravity.Acceleration }

// SetGravity changes the shared gravity for all bodies, including those already added.
func (w *World) SetGravity(g rl.Vector2) { w.gravity.Acceleration = g }

// Bodies returns the bodies in integration order. The slice must not be modified.
func (w *World) Bodies() []*body.Rigidbody { return w.bodies }

// Registry exposes the force registry so callers can register extra generators.
func (w *World) Registry() *forces.Registry { return w.registry }

// BodyState is a point-in-time copy of a body's public state.
type BodyState struct {
	Position        rl.Vector2 `json:"position" yaml:"position"`
	Rotation        float32    `json:"rotation" yaml:"rotation"`
	LinearVelocity  rl.Vector2 `json:"linear_velocity" yaml:"linear_velocity"`
	AngularVelocity float32    `json:"angular_velocity" yaml:"angular_velocity"`
	Mass            float32    `json:"mass" yaml:"mass"`
	Static          bool       `json:"static" yaml:"static"`
}

// Snapshot copies the state of every body, in order.
func (w *World) Snapshot() ([]BodyState, error) {
	states := make([]BodyState, len(w.bodies))
	for i, b := range w.bodies {
		if err := copier.Copy(&states[i], b); err != nil {
			return nil, err
		}
		states[i].Mass = b.Mass()
		states[i].Static = b.IsStatic()
	}
	return states, nil
}
