package intersect

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/primitives"
)

// SegmentAndCircle reports whether the segment touches the circle.
func SegmentAndCircle(seg primitives.Segment, c *primitives.Circle) bool {
	if PointInCircle(seg.Start, c) || PointInCircle(seg.End, c) {
		return true
	}
	ab := seg.Vector()
	lengthSq := rl.Vector2LengthSqr(ab)
	if lengthSq == 0 {
		return false
	}
	// Closest point on the segment to the circle center.
	t := rl.Vector2DotProduct(rl.Vector2Subtract(c.Center(), seg.Start), ab) / lengthSq
	t = mathutil.Clamp(t, 0, 1)
	closest := rl.Vector2Add(seg.Start, rl.Vector2Scale(ab, t))
	return PointInCircle(closest, c)
}

// SegmentAndAABB reports whether the segment touches the box. A zero-length segment
// has no direction and never hits.
func SegmentAndAABB(seg primitives.Segment, box *primitives.AABB) bool {
	if seg.LengthSquared() == 0 {
		return false
	}
	if PointInAABB(seg.Start, box) || PointInAABB(seg.End, box) {
		return true
	}
	return segmentAndBounds(seg, box.Min(), box.Max())
}

// SegmentAndBox rotates the segment into the box's unrotated frame and runs the
// axis-aligned test there.
func SegmentAndBox(seg primitives.Segment, box *primitives.Box) bool {
	if seg.LengthSquared() == 0 {
		return false
	}
	theta := -box.Rotation()
	center := box.Center()
	local := primitives.NewSegment(
		mathutil.Rotate(seg.Start, theta, center),
		mathutil.Rotate(seg.End, theta, center),
	)
	min, max := box.Min(), box.Max()
	if pointInBounds(local.Start, min, max) || pointInBounds(local.End, min, max) {
		return true
	}
	return segmentAndBounds(local, min, max)
}

func segmentAndBounds(seg primitives.Segment, min, max rl.Vector2) bool {
	length := seg.Length()
	s, ok := slab(seg.Start, seg.Direction(), min, max)
	if !ok {
		return false
	}
	t, _, _ := s.first()
	return t >= 0 && mathutil.LessOrEqual(t, length)
}

// slabResult is the parametric interval [tMin, tMax] along a ray inside a box, with the
// axis index that bounds each end (-1 when no axis bounds it).
type slabResult struct {
	tMin, tMax          float32
	entryAxis, exitAxis int
}

// first returns the nearest non-negative boundary crossing: the entry when the origin is
// outside, the exit when it starts inside.
func (s slabResult) first() (t float32, axis int, entering bool) {
	if s.tMin < 0 {
		return s.tMax, s.exitAxis, false
	}
	return s.tMin, s.entryAxis, true
}

// slab clips origin + dir*t against the axis-aligned bounds [min, max].
// A direction component that is near zero or NaN places no bound on its axis, unless
// the origin lies outside that slab, which is an immediate miss.
func slab(origin, dir, min, max rl.Vector2) (slabResult, bool) {
	res := slabResult{tMin: math32.Inf(-1), tMax: math32.Inf(1), entryAxis: -1, exitAxis: -1}
	o := [2]float32{origin.X, origin.Y}
	d := [2]float32{dir.X, dir.Y}
	lo := [2]float32{min.X, min.Y}
	hi := [2]float32{max.X, max.Y}

	for i := 0; i < 2; i++ {
		if math32.IsNaN(d[i]) || mathutil.Equal(d[i], 0) {
			if !mathutil.LessOrEqual(lo[i], o[i]) || !mathutil.LessOrEqual(o[i], hi[i]) {
				return res, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		near, far := math32.Min(t1, t2), math32.Max(t1, t2)
		if near > res.tMin {
			res.tMin, res.entryAxis = near, i
		}
		if far < res.tMax {
			res.tMax, res.exitAxis = far, i
		}
	}

	if res.tMax < 0 || res.tMin > res.tMax {
		return res, false
	}
	return res, true
}
