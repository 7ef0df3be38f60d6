package mathutil

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon is the relative tolerance used by Equal and EqualVec.
const DefaultEpsilon float32 = 1e-6

// Compare reports whether a and b are within epsilon of each other, scaled by the larger
// magnitude of the two (never less than 1). Every geometric predicate compares floats through here.
func Compare(a, b, epsilon float32) bool {
	scale := math32.Max(1, math32.Max(math32.Abs(a), math32.Abs(b)))
	return math32.Abs(a-b) <= epsilon*scale
}

// Equal is Compare with DefaultEpsilon.
func Equal(a, b float32) bool {
	return Compare(a, b, DefaultEpsilon)
}

// CompareVec compares both components of a and b with Compare.
func CompareVec(a, b rl.Vector2, epsilon float32) bool {
	return Compare(a.X, b.X, epsilon) && Compare(a.Y, b.Y, epsilon)
}

// EqualVec is CompareVec with DefaultEpsilon.
func EqualVec(a, b rl.Vector2) bool {
	return CompareVec(a, b, DefaultEpsilon)
}

// LessOrEqual reports a <= b, treating values that are Equal as equal.
func LessOrEqual(a, b float32) bool {
	return a <= b || Equal(a, b)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// Rotate rotates point by angleDeg degrees counter-clockwise about origin.
// The trigonometry runs in float64 so quarter turns land on exact values.
func Rotate(point rl.Vector2, angleDeg float32, origin rl.Vector2) rl.Vector2 {
	local := mgl64.Vec2{float64(point.X - origin.X), float64(point.Y - origin.Y)}
	r := mgl64.Rotate2D(mgl64.DegToRad(float64(angleDeg))).Mul2x1(local)
	return rl.NewVector2(float32(r.X())+origin.X, float32(r.Y())+origin.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func Normalize(v rl.Vector2) rl.Vector2 {
	length := math32.Sqrt(v.X*v.X + v.Y*v.Y)
	if length == 0 || !IsFinite(length) {
		return rl.Vector2Zero()
	}
	return rl.NewVector2(v.X/length, v.Y/length)
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
