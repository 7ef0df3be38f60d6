// Package forces holds the force generators and the registry that applies them to
// bodies each step.
package forces

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/body"
)

// Generator adds a force to a body's accumulator. Generators are registered by pointer
// so the registry can match them by identity.
type Generator interface {
	UpdateForce(b *body.Rigidbody, dt float32)
}

// Gravity applies a constant acceleration, scaled by the body's mass.
type Gravity struct {
	Acceleration rl.Vector2
}

// NewGravity returns a gravity generator for the given acceleration.
func NewGravity(acceleration rl.Vector2) *Gravity {
	return &Gravity{Acceleration: acceleration}
}

func (g *Gravity) UpdateForce(b *body.Rigidbody, dt float32) {
	b.AddForce(rl.Vector2Scale(g.Acceleration, b.Mass()))
}

// Drag opposes the body's velocity with magnitude K1*|v| + K2*|v|^2.
type Drag struct {
	K1 float32
	K2 float32
}

func (d *Drag) UpdateForce(b *body.Rigidbody, dt float32) {
	speed := rl.Vector2Length(b.LinearVelocity)
	if speed == 0 {
		return
	}
	magnitude := d.K1*speed + d.K2*speed*speed
	b.AddForce(rl.Vector2Scale(b.LinearVelocity, -magnitude/speed))
}

// Spring pulls the body toward Other with Hooke's law. Only the registered body
// receives a force; register a second spring for the other end.
type Spring struct {
	Other          *body.Rigidbody
	SpringConstant float32
	RestLength     float32
}

func (s *Spring) UpdateForce(b *body.Rigidbody, dt float32) {
	if s.Other == nil {
		return
	}
	offset := rl.Vector2Subtract(b.Position, s.Other.Position)
	length := math32.Sqrt(rl.Vector2LengthSqr(offset))
	if mathutil.Equal(length, 0) {
		return
	}
	stretch := length - s.RestLength
	b.AddForce(rl.Vector2Scale(mathutil.Normalize(offset), -s.SpringConstant*stretch))
}
