package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/graphics"
	"physics-engine/internal/physics/collision"
	"physics-engine/internal/physics/primitives"
)

// Line thickness in world units.
const lineThick = 0.05

// Colors used by the world-space debug draw.
var (
	StaticColor  = rl.Gray
	DynamicColor = rl.SkyBlue
	HitColor     = rl.Orange
	RayColor     = rl.Yellow
	ContactColor = rl.Red
)

// ShapeColor picks a color for s: hit shapes first, then static vs dynamic.
func ShapeColor(s primitives.Shape, hit bool) rl.Color {
	if hit {
		return HitColor
	}
	if s.Body().IsStatic() {
		return StaticColor
	}
	return DynamicColor
}

// Outline returns the closed outline of s in world coordinates: the four corners for
// boxes, nil for circles.
func Outline(s primitives.Shape) []rl.Vector2 {
	var v [4]rl.Vector2
	switch s := s.(type) {
	case *primitives.AABB:
		v = s.Vertices()
	case *primitives.Box:
		v = s.Vertices()
	default:
		return nil
	}
	// Corners come as (min,min), (min,max), (max,min), (max,max); reorder to walk the edge.
	return []rl.Vector2{v[0], v[1], v[3], v[2]}
}

// DrawShape draws s inside a BeginMode2D block set up by graphics.Run.
func DrawShape(s primitives.Shape, color rl.Color) {
	if c, ok := s.(*primitives.Circle); ok {
		center := graphics.Flip(c.Center())
		rl.DrawCircleLinesV(center, c.Radius, color)
		rl.DrawLineEx(center, graphics.Flip(rl.Vector2Add(c.Center(), rl.NewVector2(c.Radius, 0))), lineThick, color)
		return
	}
	pts := Outline(s)
	for i := range pts {
		rl.DrawLineEx(graphics.Flip(pts[i]), graphics.Flip(pts[(i+1)%len(pts)]), lineThick, color)
	}
}

// DrawRay draws ray up to the hit point (or its maximum, capped at farDistance) and the
// hit normal when result reports a hit.
func DrawRay(ray primitives.Ray, result *primitives.RaycastResult, farDistance float32) {
	end := ray.PointAt(min(ray.Maximum, farDistance))
	if result != nil && result.Hit {
		end = result.Point
	}
	rl.DrawLineEx(graphics.Flip(ray.Origin), graphics.Flip(end), lineThick, RayColor)
	if result != nil && result.Hit {
		tip := rl.Vector2Add(result.Point, result.Normal)
		rl.DrawLineEx(graphics.Flip(result.Point), graphics.Flip(tip), lineThick, HitColor)
	}
}

// DrawManifold marks each contact point and draws the normal scaled by depth.
func DrawManifold(m collision.Manifold) {
	if !m.Colliding {
		return
	}
	for _, p := range m.ContactPoints {
		rl.DrawCircleV(graphics.Flip(p), 0.1, ContactColor)
		tip := rl.Vector2Add(p, rl.Vector2Scale(m.Normal, max(m.Depth, 0.25)))
		rl.DrawLineEx(graphics.Flip(p), graphics.Flip(tip), lineThick, ContactColor)
	}
}
