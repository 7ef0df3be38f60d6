// Package primitives holds the 2D collision shapes, rays, segments and raycast results.
//
// Shapes are a closed set: Circle, AABB and Box. Each takes its center from an attached
// body.Rigidbody; reading derived geometry before a body is attached panics.
package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics/body"
)

// Kind identifies a shape variant.
type Kind uint8

const (
	KindCircle Kind = iota
	KindAABB
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindAABB:
		return "aabb"
	case KindBox:
		return "box"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Shape is implemented by *Circle, *AABB and *Box only.
type Shape interface {
	Kind() Kind
	Body() *body.Rigidbody
	Center() rl.Vector2
	isShape()
}

// mustBody returns rb or panics: a shape without a body is a wiring bug.
func mustBody(rb *body.Rigidbody, what string) *body.Rigidbody {
	if rb == nil {
		panic(fmt.Sprintf("primitives: %s has no rigidbody attached", what))
	}
	return rb
}
