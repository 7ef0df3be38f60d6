package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/body"
)

// extent is the half-size storage shared by AABB and Box. The center is always
// the attached body's position; min and max are derived on every call.
type extent struct {
	halfSize rl.Vector2
	body     *body.Rigidbody
}

func extentFromCorners(min, max rl.Vector2) extent {
	return extent{halfSize: rl.Vector2Scale(rl.Vector2Subtract(max, min), 0.5)}
}

func extentFromSize(size rl.Vector2) extent {
	return extent{halfSize: rl.Vector2Scale(size, 0.5)}
}

// Size returns the full width and height.
func (e *extent) Size() rl.Vector2 { return rl.Vector2Scale(e.halfSize, 2) }

// HalfSize returns half the width and height.
func (e *extent) HalfSize() rl.Vector2 { return e.halfSize }

// SetSize sets the full width and height.
func (e *extent) SetSize(size rl.Vector2) { e.halfSize = rl.Vector2Scale(size, 0.5) }

func (e *extent) Body() *body.Rigidbody { return e.body }

// SetBody attaches the rigidbody that supplies the center (and, for Box, the rotation).
func (e *extent) SetBody(rb *body.Rigidbody) { e.body = rb }

func (e *extent) center(what string) rl.Vector2 {
	return mustBody(e.body, what).Position
}

func (e *extent) bounds(what string) (min, max rl.Vector2) {
	c := e.center(what)
	return rl.Vector2Subtract(c, e.halfSize), rl.Vector2Add(c, e.halfSize)
}

func (e *extent) corners(what string) [4]rl.Vector2 {
	min, max := e.bounds(what)
	return [4]rl.Vector2{
		rl.NewVector2(min.X, min.Y),
		rl.NewVector2(min.X, max.Y),
		rl.NewVector2(max.X, min.Y),
		rl.NewVector2(max.X, max.Y),
	}
}

// AABB is an axis-aligned box. The body's rotation is ignored.
type AABB struct {
	extent
}

// NewAABB returns a box whose size is max-min. Only the size is kept; the position
// comes from the body attached later.
func NewAABB(min, max rl.Vector2) *AABB {
	return &AABB{extent: extentFromCorners(min, max)}
}

// NewAABBSize returns a box of the given full size.
func NewAABBSize(size rl.Vector2) *AABB {
	return &AABB{extent: extentFromSize(size)}
}

func (a *AABB) Kind() Kind { return KindAABB }

func (a *AABB) Center() rl.Vector2 { return a.center("aabb") }

func (a *AABB) Min() rl.Vector2 {
	min, _ := a.bounds("aabb")
	return min
}

func (a *AABB) Max() rl.Vector2 {
	_, max := a.bounds("aabb")
	return max
}

// Vertices returns the 4 corners.
func (a *AABB) Vertices() [4]rl.Vector2 { return a.corners("aabb") }

// Axes returns the separating axes to test for this box.
func (a *AABB) Axes() []rl.Vector2 {
	return []rl.Vector2{rl.NewVector2(1, 0), rl.NewVector2(0, 1)}
}

func (a *AABB) isShape() {}

// Box is an oriented box, rotated about its body's position by the body's rotation.
// Min and Max describe the unrotated box.
type Box struct {
	extent
}

// NewBox returns an oriented box whose size is max-min.
func NewBox(min, max rl.Vector2) *Box {
	return &Box{extent: extentFromCorners(min, max)}
}

// NewBoxSize returns an oriented box of the given full size.
func NewBoxSize(size rl.Vector2) *Box {
	return &Box{extent: extentFromSize(size)}
}

func (b *Box) Kind() Kind { return KindBox }

func (b *Box) Center() rl.Vector2 { return b.center("box") }

// Rotation returns the body's rotation in degrees.
func (b *Box) Rotation() float32 { return mustBody(b.body, "box").Rotation }

// Min returns the unrotated minimum corner.
func (b *Box) Min() rl.Vector2 {
	min, _ := b.bounds("box")
	return min
}

// Max returns the unrotated maximum corner.
func (b *Box) Max() rl.Vector2 {
	_, max := b.bounds("box")
	return max
}

// Vertices returns the 4 corners rotated about the body's center.
func (b *Box) Vertices() [4]rl.Vector2 {
	v := b.corners("box")
	rot := b.body.Rotation
	if rot == 0 {
		return v
	}
	c := b.body.Position
	for i := range v {
		v[i] = mathutil.Rotate(v[i], rot, c)
	}
	return v
}

// Axes returns the box's local x and y axes in world space.
func (b *Box) Axes() []rl.Vector2 {
	rot := b.Rotation()
	origin := rl.Vector2Zero()
	return []rl.Vector2{
		mathutil.Rotate(rl.NewVector2(1, 0), rot, origin),
		mathutil.Rotate(rl.NewVector2(0, 1), rot, origin),
	}
}

func (b *Box) isShape() {}
