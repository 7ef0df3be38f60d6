package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics/body"
)

// Circle is centered on its body's position.
type Circle struct {
	Radius float32
	body   *body.Rigidbody
}

// NewCircle returns a circle with no body attached.
func NewCircle(radius float32) *Circle {
	return &Circle{Radius: radius}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Body() *body.Rigidbody { return c.body }

// SetBody attaches the rigidbody that supplies the center.
func (c *Circle) SetBody(rb *body.Rigidbody) { c.body = rb }

// Center returns the body position. Panics if no body is attached.
func (c *Circle) Center() rl.Vector2 {
	return mustBody(c.body, "circle").Position
}

func (c *Circle) isShape() {}
