package intersect

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/primitives"
)

// parallelEpsilon replaces a ray direction component that is parallel to an oriented
// box's slab, so the division in RaycastBox stays finite.
const parallelEpsilon float32 = 0.00001

// RaycastCircle casts ray against c. When result is non-nil it is reset first and
// filled on a hit with the entry point (exit point if the ray starts inside), the
// outward surface normal and the distance t along the ray.
func RaycastCircle(ray primitives.Ray, c *primitives.Circle, result *primitives.RaycastResult) bool {
	primitives.ResetResult(result)

	center := c.Center()
	originToCenter := rl.Vector2Subtract(center, ray.Origin)
	radiusSq := c.Radius * c.Radius
	originToCenterSq := rl.Vector2LengthSqr(originToCenter)

	// Project the center onto the ray; bSq is the squared distance from the center to the ray line.
	projection := rl.Vector2DotProduct(originToCenter, ray.Direction)
	bSq := originToCenterSq - projection*projection
	if radiusSq-bSq < 0 {
		return false
	}
	half := math32.Sqrt(radiusSq - bSq)

	var t float32
	if originToCenterSq < radiusSq {
		t = projection + half
	} else {
		t = projection - half
	}
	if t < 0 || t > ray.Maximum {
		return false
	}

	if result != nil {
		point := ray.PointAt(t)
		normal := mathutil.Normalize(rl.Vector2Subtract(point, center))
		result.Set(point, normal, t, true)
	}
	return true
}

// RaycastAABB casts ray against box with the slab method.
func RaycastAABB(ray primitives.Ray, box *primitives.AABB, result *primitives.RaycastResult) bool {
	primitives.ResetResult(result)

	s, ok := slab(ray.Origin, ray.Direction, box.Min(), box.Max())
	if !ok {
		return false
	}
	t, axis, entering := s.first()
	if t < 0 || t > ray.Maximum {
		return false
	}

	if result != nil {
		var normal rl.Vector2
		switch axis {
		case 0:
			normal = faceNormal(rl.NewVector2(1, 0), ray.Direction.X, entering)
		case 1:
			normal = faceNormal(rl.NewVector2(0, 1), ray.Direction.Y, entering)
		}
		result.Set(ray.PointAt(t), normal, t, true)
	}
	return true
}

// RaycastBox casts ray against an oriented box by expressing the ray in the box's
// local axes and running the slab method there.
func RaycastBox(ray primitives.Ray, box *primitives.Box, result *primitives.RaycastResult) bool {
	primitives.ResetResult(result)
	if ray.Direction == rl.Vector2Zero() {
		return false
	}

	axes := box.Axes()
	half := box.HalfSize()
	h := [2]float32{half.X, half.Y}
	p := rl.Vector2Subtract(box.Center(), ray.Origin)

	// f: ray direction in box space; e: box center relative to the origin in box space.
	f := [2]float32{rl.Vector2DotProduct(axes[0], ray.Direction), rl.Vector2DotProduct(axes[1], ray.Direction)}
	e := [2]float32{rl.Vector2DotProduct(axes[0], p), rl.Vector2DotProduct(axes[1], p)}

	var ts [4]float32
	for i := 0; i < 2; i++ {
		if mathutil.Equal(f[i], 0) {
			// Parallel to this slab: a miss unless the origin is between its faces.
			if -e[i]-h[i] > 0 || -e[i]+h[i] < 0 {
				return false
			}
			f[i] = parallelEpsilon
		}
		ts[i*2] = (e[i] + h[i]) / f[i]
		ts[i*2+1] = (e[i] - h[i]) / f[i]
	}

	near := [2]float32{math32.Min(ts[0], ts[1]), math32.Min(ts[2], ts[3])}
	far := [2]float32{math32.Max(ts[0], ts[1]), math32.Max(ts[2], ts[3])}
	s := slabResult{tMin: near[0], tMax: far[0]}
	if near[1] > near[0] {
		s.tMin, s.entryAxis = near[1], 1
	}
	if far[1] < far[0] {
		s.tMax, s.exitAxis = far[1], 1
	}
	if s.tMax < 0 || s.tMin > s.tMax {
		return false
	}

	t, axis, entering := s.first()
	if t < 0 || t > ray.Maximum {
		return false
	}

	if result != nil {
		result.Set(ray.PointAt(t), faceNormal(axes[axis], f[axis], entering), t, true)
	}
	return true
}

// RaycastAll casts ray against every shape and keeps the closest hit. It returns the
// index of that shape, or -1 when nothing is hit.
func RaycastAll(ray primitives.Ray, shapes []primitives.Shape, result *primitives.RaycastResult) int {
	primitives.ResetResult(result)

	closest := -1
	var best primitives.RaycastResult
	var hit primitives.RaycastResult
	for i, s := range shapes {
		if !Raycast(ray, s, &hit) {
			continue
		}
		if closest < 0 || hit.T < best.T {
			closest, best = i, hit
		}
	}
	if closest >= 0 && result != nil {
		*result = best
	}
	return closest
}

// faceNormal returns the outward normal of the face crossed along axis. proj is the ray
// direction projected on axis; entering faces oppose it, exit faces follow it.
func faceNormal(axis rl.Vector2, proj float32, entering bool) rl.Vector2 {
	if (proj > 0) == entering {
		return rl.Vector2Negate(axis)
	}
	return axis
}
