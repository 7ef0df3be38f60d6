// Package intersect is the stateless collision-detection library: point containment,
// segment and ray intersection, and shape overlap. Nothing here mutates its inputs;
// results travel back as booleans plus an optional *primitives.RaycastResult.
package intersect

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/primitives"
)

// PointOnLine reports whether point lies on the infinite line through the segment,
// using slope/intercept form. Vertical lines have no slope and are matched on x;
// a zero-length segment only contains its own point.
func PointOnLine(point rl.Vector2, line primitives.Segment) bool {
	dx := line.End.X - line.Start.X
	dy := line.End.Y - line.Start.Y
	if mathutil.Equal(dx, 0) {
		if mathutil.Equal(dy, 0) {
			return mathutil.EqualVec(point, line.Start)
		}
		return mathutil.Equal(point.X, line.Start.X)
	}
	slope := dy / dx
	intercept := line.End.Y - slope*line.End.X
	return mathutil.Equal(point.Y, slope*point.X+intercept)
}

// PointOnSegment is PointOnLine restricted to the segment's extent.
func PointOnSegment(point rl.Vector2, seg primitives.Segment) bool {
	if !PointOnLine(point, seg) {
		return false
	}
	lo := rl.NewVector2(min(seg.Start.X, seg.End.X), min(seg.Start.Y, seg.End.Y))
	hi := rl.NewVector2(max(seg.Start.X, seg.End.X), max(seg.Start.Y, seg.End.Y))
	return pointInBounds(point, lo, hi)
}

// PointInCircle reports whether point is inside or on the circle.
func PointInCircle(point rl.Vector2, c *primitives.Circle) bool {
	return mathutil.LessOrEqual(rl.Vector2DistanceSqr(point, c.Center()), c.Radius*c.Radius)
}

// PointInAABB reports whether point is inside or on the box.
func PointInAABB(point rl.Vector2, box *primitives.AABB) bool {
	return pointInBounds(point, box.Min(), box.Max())
}

// PointInBox maps point into the box's unrotated frame and tests it against the
// unrotated bounds.
func PointInBox(point rl.Vector2, box *primitives.Box) bool {
	local := mathutil.Rotate(point, -box.Rotation(), box.Center())
	return pointInBounds(local, box.Min(), box.Max())
}

func pointInBounds(p, min, max rl.Vector2) bool {
	return mathutil.LessOrEqual(min.X, p.X) && mathutil.LessOrEqual(p.X, max.X) &&
		mathutil.LessOrEqual(min.Y, p.Y) && mathutil.LessOrEqual(p.Y, max.Y)
}
