// Package collision builds contact manifolds for overlapping shapes.
package collision

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/primitives"
)

// ErrUnsupportedPair is returned by FindCollisionFeatures for shape pairs that have
// no manifold builder yet (everything except circle-circle).
var ErrUnsupportedPair = errors.New("collision: unsupported shape pair")

// Manifold describes how two shapes touch. The zero value means "not colliding".
type Manifold struct {
	Normal        rl.Vector2
	Depth         float32
	ContactPoints []rl.Vector2
	Colliding     bool
}

// NewManifold returns a colliding manifold with the given normal and depth and no contacts.
func NewManifold(normal rl.Vector2, depth float32) Manifold {
	return Manifold{Normal: normal, Depth: depth, Colliding: true}
}

// AddContact appends a contact point.
func (m *Manifold) AddContact(p rl.Vector2) {
	m.ContactPoints = append(m.ContactPoints, p)
}

// CircleCircle builds the manifold for two circles. Depth is half the overlap so each
// circle can be pushed out by the same amount; the normal points from a toward b and
// the single contact sits on that normal, depth short of a's surface.
func CircleCircle(a, b *primitives.Circle) Manifold {
	sumRadii := a.Radius + b.Radius
	between := rl.Vector2Subtract(b.Center(), a.Center())
	distSq := rl.Vector2LengthSqr(between)
	if distSq-sumRadii*sumRadii > 0 {
		return Manifold{}
	}

	depth := math32.Abs(math32.Sqrt(distSq)-sumRadii) * 0.5
	normal := mathutil.Normalize(between)
	if normal == rl.Vector2Zero() {
		// Coincident centers.
		normal = rl.NewVector2(0, 1)
	}

	m := NewManifold(normal, depth)
	m.AddContact(rl.Vector2Add(a.Center(), rl.Vector2Scale(normal, a.Radius-depth)))
	return m
}

// FindCollisionFeatures dispatches to the manifold builder for the pair. Pairs without a
// builder return ErrUnsupportedPair rather than an approximation.
func FindCollisionFeatures(a, b primitives.Shape) (Manifold, error) {
	if ca, ok := a.(*primitives.Circle); ok {
		if cb, ok := b.(*primitives.Circle); ok {
			return CircleCircle(ca, cb), nil
		}
	}
	return Manifold{}, fmt.Errorf("%w: %s-%s", ErrUnsupportedPair, a.Kind(), b.Kind())
}
