package intersect

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics/primitives"
)

// Overlap dispatches to the overlap test for the pair's kinds.
func Overlap(a, b primitives.Shape) bool {
	switch a := a.(type) {
	case *primitives.Circle:
		switch b := b.(type) {
		case *primitives.Circle:
			return CircleAndCircle(a, b)
		case *primitives.AABB:
			return CircleAndAABB(a, b)
		case *primitives.Box:
			return CircleAndBox(a, b)
		}
	case *primitives.AABB:
		switch b := b.(type) {
		case *primitives.Circle:
			return AABBAndCircle(a, b)
		case *primitives.AABB:
			return AABBAndAABB(a, b)
		case *primitives.Box:
			return AABBAndBox(a, b)
		}
	case *primitives.Box:
		switch b := b.(type) {
		case *primitives.Circle:
			return BoxAndCircle(a, b)
		case *primitives.AABB:
			return BoxAndAABB(a, b)
		case *primitives.Box:
			return BoxAndBox(a, b)
		}
	}
	panic(unknownShape(a, b))
}

// PointInShape dispatches to the containment test for s.
func PointInShape(point rl.Vector2, s primitives.Shape) bool {
	switch s := s.(type) {
	case *primitives.Circle:
		return PointInCircle(point, s)
	case *primitives.AABB:
		return PointInAABB(point, s)
	case *primitives.Box:
		return PointInBox(point, s)
	}
	panic(unknownShape(s))
}

// SegmentIntersects dispatches to the segment test for s.
func SegmentIntersects(seg primitives.Segment, s primitives.Shape) bool {
	switch s := s.(type) {
	case *primitives.Circle:
		return SegmentAndCircle(seg, s)
	case *primitives.AABB:
		return SegmentAndAABB(seg, s)
	case *primitives.Box:
		return SegmentAndBox(seg, s)
	}
	panic(unknownShape(s))
}

// Raycast dispatches to the raycast for s.
func Raycast(ray primitives.Ray, s primitives.Shape, result *primitives.RaycastResult) bool {
	switch s := s.(type) {
	case *primitives.Circle:
		return RaycastCircle(ray, s, result)
	case *primitives.AABB:
		return RaycastAABB(ray, s, result)
	case *primitives.Box:
		return RaycastBox(ray, s, result)
	}
	panic(unknownShape(s))
}

func unknownShape(shapes ...primitives.Shape) string {
	types := make([]string, len(shapes))
	for i, s := range shapes {
		types[i] = fmt.Sprintf("%T", s)
	}
	return "intersect: unsupported shapes " + strings.Join(types, ", ")
}
