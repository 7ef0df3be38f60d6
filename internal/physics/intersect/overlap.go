package intersect

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/primitives"
)

// CircleAndSegment is SegmentAndCircle with the arguments swapped.
func CircleAndSegment(c *primitives.Circle, seg primitives.Segment) bool {
	return SegmentAndCircle(seg, c)
}

// CircleAndCircle reports whether two circles touch or overlap.
func CircleAndCircle(a, b *primitives.Circle) bool {
	radii := a.Radius + b.Radius
	return mathutil.LessOrEqual(rl.Vector2DistanceSqr(a.Center(), b.Center()), radii*radii)
}

// CircleAndAABB clamps the circle center into the box and tests the distance to that point.
func CircleAndAABB(c *primitives.Circle, box *primitives.AABB) bool {
	return circleAndBounds(c.Center(), c.Radius, box.Min(), box.Max())
}

// CircleAndBox maps the circle center into the box's unrotated frame before clamping.
func CircleAndBox(c *primitives.Circle, box *primitives.Box) bool {
	local := mathutil.Rotate(c.Center(), -box.Rotation(), box.Center())
	return circleAndBounds(local, c.Radius, box.Min(), box.Max())
}

func AABBAndCircle(box *primitives.AABB, c *primitives.Circle) bool { return CircleAndAABB(c, box) }

func BoxAndCircle(box *primitives.Box, c *primitives.Circle) bool { return CircleAndBox(c, box) }

// AABBAndAABB runs the separating axis test on the two cardinal axes.
func AABBAndAABB(a, b *primitives.AABB) bool {
	return separatingAxisOverlap(a.Vertices(), b.Vertices(), a.Axes())
}

// AABBAndBox runs the separating axis test on the cardinal axes and the box's axes.
func AABBAndBox(a *primitives.AABB, b *primitives.Box) bool {
	return separatingAxisOverlap(a.Vertices(), b.Vertices(), a.Axes(), b.Axes())
}

func BoxAndAABB(a *primitives.Box, b *primitives.AABB) bool { return AABBAndBox(b, a) }

// BoxAndBox runs the separating axis test on both boxes' axes.
func BoxAndBox(a, b *primitives.Box) bool {
	return separatingAxisOverlap(a.Vertices(), b.Vertices(), a.Axes(), b.Axes())
}

func circleAndBounds(center rl.Vector2, radius float32, min, max rl.Vector2) bool {
	closest := rl.NewVector2(
		mathutil.Clamp(center.X, min.X, max.X),
		mathutil.Clamp(center.Y, min.Y, max.Y),
	)
	return mathutil.LessOrEqual(rl.Vector2DistanceSqr(center, closest), radius*radius)
}

// separatingAxisOverlap reports overlap only if the projections of a and b intersect on
// every candidate axis; a single disjoint axis proves separation.
func separatingAxisOverlap(a, b [4]rl.Vector2, axisSets ...[]rl.Vector2) bool {
	for _, axes := range axisSets {
		for _, axis := range axes {
			if !overlapOnAxis(a, b, axis) {
				return false
			}
		}
	}
	return true
}

func overlapOnAxis(a, b [4]rl.Vector2, axis rl.Vector2) bool {
	aMin, aMax := interval(a, axis)
	bMin, bMax := interval(b, axis)
	return mathutil.LessOrEqual(bMin, aMax) && mathutil.LessOrEqual(aMin, bMax)
}

// interval projects the vertices onto axis and returns the covered range.
func interval(vertices [4]rl.Vector2, axis rl.Vector2) (lo, hi float32) {
	lo = rl.Vector2DotProduct(axis, vertices[0])
	hi = lo
	for _, v := range vertices[1:] {
		p := rl.Vector2DotProduct(axis, v)
		lo = min(lo, p)
		hi = max(hi, p)
	}
	return lo, hi
}
