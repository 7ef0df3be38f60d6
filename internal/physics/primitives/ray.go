package primitives

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
)

// Ray is a half-line. Direction is unit length (zero if built from a zero vector).
// Maximum bounds the hit distance t and defaults to math.MaxFloat32.
type Ray struct {
	Origin    rl.Vector2
	Direction rl.Vector2
	Maximum   float32
}

// NewRay normalizes direction and leaves the range effectively unbounded.
func NewRay(origin, direction rl.Vector2) Ray {
	return Ray{
		Origin:    origin,
		Direction: mathutil.Normalize(direction),
		Maximum:   math.MaxFloat32,
	}
}

// WithMaximum returns a copy of r limited to distance max.
func (r Ray) WithMaximum(max float32) Ray {
	r.Maximum = max
	return r
}

// PointAt returns Origin + Direction*t.
func (r Ray) PointAt(t float32) rl.Vector2 {
	return rl.Vector2Add(r.Origin, rl.Vector2Scale(r.Direction, t))
}

// Segment is a line segment between two points.
type Segment struct {
	Start rl.Vector2
	End   rl.Vector2
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end rl.Vector2) Segment {
	return Segment{Start: start, End: end}
}

// Vector returns End - Start.
func (s Segment) Vector() rl.Vector2 {
	return rl.Vector2Subtract(s.End, s.Start)
}

// Direction returns the unit vector from Start to End, or zero for a degenerate segment.
func (s Segment) Direction() rl.Vector2 {
	return mathutil.Normalize(s.Vector())
}

func (s Segment) LengthSquared() float32 {
	return rl.Vector2LengthSqr(s.Vector())
}

func (s Segment) Length() float32 {
	return math32.Sqrt(s.LengthSquared())
}

// RaycastResult describes a ray hit. Queries reset it to the "no hit" state
// (zero vectors, T = -1, Hit = false) before testing.
type RaycastResult struct {
	Point  rl.Vector2
	Normal rl.Vector2
	T      float32
	Hit    bool
}

// NewRaycastResult returns a result in the "no hit" state.
func NewRaycastResult() *RaycastResult {
	r := &RaycastResult{}
	r.Reset()
	return r
}

// Reset restores the "no hit" state.
func (r *RaycastResult) Reset() {
	r.Set(rl.Vector2Zero(), rl.Vector2Zero(), -1, false)
}

// Set fills in the result.
func (r *RaycastResult) Set(point, normal rl.Vector2, t float32, hit bool) {
	r.Point = point
	r.Normal = normal
	r.T = t
	r.Hit = hit
}

// ResetResult resets r if it is not nil.
func ResetResult(r *RaycastResult) {
	if r != nil {
		r.Reset()
	}
}
