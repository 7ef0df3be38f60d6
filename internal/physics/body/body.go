package body

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
)

// Transform is an externally owned position and scale record (e.g. an entity's transform).
// A bound Rigidbody writes its position into it after every integration and never reads it back.
type Transform struct {
	Position rl.Vector2
	Scale    rl.Vector2
}

// Rigidbody is the dynamic state that places a shape in the world.
// Mass 0 (within epsilon) means static: integration never moves the body.
// Rotation is in degrees.
type Rigidbody struct {
	Position        rl.Vector2
	Rotation        float32
	LinearVelocity  rl.Vector2
	AngularVelocity float32
	LinearDamping   float32
	AngularDamping  float32
	FixedRotation   bool

	mass             float32
	inverseMass      float32
	forceAccumulator rl.Vector2
	transform        *Transform
}

// New returns a static body at position. Call SetMass to make it dynamic.
func New(position rl.Vector2) *Rigidbody {
	return &Rigidbody{Position: position}
}

// NewWithRotation returns a static body at position rotated by rotationDeg degrees.
func NewWithRotation(position rl.Vector2, rotationDeg float32) *Rigidbody {
	return &Rigidbody{Position: position, Rotation: rotationDeg}
}

// Mass returns the body's mass.
func (b *Rigidbody) Mass() float32 {
	return b.mass
}

// InverseMass returns 1/mass, or 0 when the body is static.
func (b *Rigidbody) InverseMass() float32 {
	return b.inverseMass
}

// SetMass sets the mass and recomputes the inverse mass. A mass within epsilon of zero
// makes the body immovable (inverse mass exactly 0).
func (b *Rigidbody) SetMass(mass float32) {
	b.mass = mass
	if mathutil.Equal(mass, 0) {
		b.inverseMass = 0
		return
	}
	b.inverseMass = 1 / mass
}

// IsStatic reports whether the body is immovable.
func (b *Rigidbody) IsStatic() bool {
	return b.inverseMass == 0
}

// ForceAccumulator returns the force gathered since the last integration.
func (b *Rigidbody) ForceAccumulator() rl.Vector2 {
	return b.forceAccumulator
}

// AddForce accumulates f until the next Integrate.
func (b *Rigidbody) AddForce(f rl.Vector2) {
	b.forceAccumulator = rl.Vector2Add(b.forceAccumulator, f)
}

// ClearAccumulator zeroes the accumulated force.
func (b *Rigidbody) ClearAccumulator() {
	b.forceAccumulator = rl.Vector2Zero()
}

// SetTransform binds the body to an external transform and adopts its position.
// Passing nil unbinds it.
func (b *Rigidbody) SetTransform(t *Transform) {
	b.transform = t
	if t != nil {
		b.Position = t.Position
	}
}

// Transform returns the bound transform, or nil.
func (b *Rigidbody) Transform() *Transform {
	return b.transform
}

// SetPosition moves the body (and its bound transform) without touching velocity.
func (b *Rigidbody) SetPosition(p rl.Vector2) {
	b.Position = p
	b.syncTransform()
}

// Integrate advances the body by dt with semi-implicit Euler: velocity is updated from the
// accumulated force first, then position from the new velocity. Static bodies never move.
// The accumulator is always empty when Integrate returns.
func (b *Rigidbody) Integrate(dt float32) {
	defer b.ClearAccumulator()
	if b.inverseMass == 0 {
		return
	}

	acceleration := rl.Vector2Scale(b.forceAccumulator, b.inverseMass)
	b.LinearVelocity = rl.Vector2Add(b.LinearVelocity, rl.Vector2Scale(acceleration, dt))
	if b.LinearDamping > 0 {
		b.LinearVelocity = rl.Vector2Scale(b.LinearVelocity, 1/(1+dt*b.LinearDamping))
	}
	b.Position = rl.Vector2Add(b.Position, rl.Vector2Scale(b.LinearVelocity, dt))

	if !b.FixedRotation {
		if b.AngularDamping > 0 {
			b.AngularVelocity *= 1 / (1 + dt*b.AngularDamping)
		}
		b.Rotation += b.AngularVelocity * dt
	}

	b.syncTransform()
}

func (b *Rigidbody) syncTransform() {
	if b.transform != nil {
		b.transform.Position = b.Position
	}
}
