package primitives

import (
	"math"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/body"
)

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want message containing %q", r, want)
		}
	}()
	fn()
}

func TestShapesWithoutBodyPanic(t *testing.T) {
	expectPanic(t, "circle has no rigidbody", func() { NewCircle(1).Center() })
	expectPanic(t, "aabb has no rigidbody", func() { NewAABBSize(rl.NewVector2(1, 1)).Min() })
	expectPanic(t, "aabb has no rigidbody", func() { NewAABBSize(rl.NewVector2(1, 1)).Vertices() })
	expectPanic(t, "box has no rigidbody", func() { NewBoxSize(rl.NewVector2(1, 1)).Max() })
	expectPanic(t, "box has no rigidbody", func() { NewBoxSize(rl.NewVector2(1, 1)).Vertices() })
	expectPanic(t, "box has no rigidbody", func() { NewBoxSize(rl.NewVector2(1, 1)).Axes() })
}

func TestKinds(t *testing.T) {
	shapes := []struct {
		shape Shape
		want  Kind
		name  string
	}{
		{NewCircle(1), KindCircle, "circle"},
		{NewAABBSize(rl.NewVector2(1, 1)), KindAABB, "aabb"},
		{NewBoxSize(rl.NewVector2(1, 1)), KindBox, "box"},
	}
	for _, s := range shapes {
		if s.shape.Kind() != s.want {
			t.Errorf("Kind() = %v, want %v", s.shape.Kind(), s.want)
		}
		if s.want.String() != s.name {
			t.Errorf("String() = %q, want %q", s.want.String(), s.name)
		}
	}
}

func TestAABBBoundsFollowBody(t *testing.T) {
	box := NewAABB(rl.NewVector2(0, 0), rl.NewVector2(2, 4))
	rb := body.New(rl.NewVector2(5, 5))
	box.SetBody(rb)

	if got, want := box.HalfSize(), rl.NewVector2(1, 2); got != want {
		t.Errorf("HalfSize() = %v, want %v", got, want)
	}
	if got, want := box.Min(), rl.NewVector2(4, 3); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := box.Max(), rl.NewVector2(6, 7); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}

	rb.Position = rl.NewVector2(0, 0)
	if got, want := box.Min(), rl.NewVector2(-1, -2); got != want {
		t.Errorf("Min() after move = %v, want %v", got, want)
	}

	box.SetSize(rl.NewVector2(4, 4))
	if got, want := box.Size(), rl.NewVector2(4, 4); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestAABBIgnoresRotation(t *testing.T) {
	box := NewAABBSize(rl.NewVector2(2, 2))
	box.SetBody(body.NewWithRotation(rl.Vector2Zero(), 45))
	v := box.Vertices()
	if v[0] != rl.NewVector2(-1, -1) || v[3] != rl.NewVector2(1, 1) {
		t.Errorf("Vertices() = %v, want unrotated corners", v)
	}
}

func TestBoxVerticesRotateAboutCenter(t *testing.T) {
	box := NewBoxSize(rl.NewVector2(2, 2))
	rb := body.NewWithRotation(rl.NewVector2(3, 3), 90)
	box.SetBody(rb)

	v := box.Vertices()
	want := [4]rl.Vector2{
		{X: 4, Y: 2}, // (2,2) rotated 90 about (3,3)
		{X: 2, Y: 2}, // (2,4)
		{X: 4, Y: 4}, // (4,2)
		{X: 2, Y: 4}, // (4,4)
	}
	for i := range v {
		if !mathutil.CompareVec(v[i], want[i], 1e-5) {
			t.Errorf("Vertices()[%d] = %v, want %v", i, v[i], want[i])
		}
	}

	rb.Rotation = 45
	for _, p := range box.Vertices() {
		d := rl.Vector2Distance(p, rb.Position)
		if !mathutil.Compare(d, float32(math.Sqrt2), 1e-5) {
			t.Errorf("vertex %v is %v from center, want sqrt(2)", p, d)
		}
	}
}

func TestBoxAxes(t *testing.T) {
	box := NewBoxSize(rl.NewVector2(1, 1))
	box.SetBody(body.NewWithRotation(rl.Vector2Zero(), 90))
	axes := box.Axes()
	if !mathutil.CompareVec(axes[0], rl.NewVector2(0, 1), 1e-6) {
		t.Errorf("Axes()[0] = %v, want (0,1)", axes[0])
	}
	if !mathutil.CompareVec(axes[1], rl.NewVector2(-1, 0), 1e-6) {
		t.Errorf("Axes()[1] = %v, want (-1,0)", axes[1])
	}
}

func TestNewRayNormalizes(t *testing.T) {
	r := NewRay(rl.NewVector2(1, 1), rl.NewVector2(3, 4))
	if !mathutil.CompareVec(r.Direction, rl.NewVector2(0.6, 0.8), 1e-6) {
		t.Errorf("Direction = %v, want (0.6,0.8)", r.Direction)
	}
	if r.Maximum != math.MaxFloat32 {
		t.Errorf("Maximum = %v, want MaxFloat32", r.Maximum)
	}
	if got := r.WithMaximum(5).Maximum; got != 5 {
		t.Errorf("WithMaximum(5).Maximum = %v", got)
	}
	if got, want := r.PointAt(5), rl.NewVector2(4, 5); !mathutil.CompareVec(got, want, 1e-6) {
		t.Errorf("PointAt(5) = %v, want %v", got, want)
	}
}

func TestSegmentLength(t *testing.T) {
	s := NewSegment(rl.NewVector2(0, 0), rl.NewVector2(3, 4))
	if s.LengthSquared() != 25 {
		t.Errorf("LengthSquared() = %v, want 25", s.LengthSquared())
	}
	if s.Length() != 5 {
		t.Errorf("Length() = %v, want 5", s.Length())
	}
	if d := s.Direction(); !mathutil.EqualVec(d, rl.NewVector2(0.6, 0.8)) {
		t.Errorf("Direction() = %v, want (0.6, 0.8)", d)
	}
	if d := NewSegment(rl.NewVector2(1, 1), rl.NewVector2(1, 1)).Direction(); d != rl.Vector2Zero() {
		t.Errorf("zero-length Direction() = %v, want zero", d)
	}
}

func TestRaycastResultReset(t *testing.T) {
	r := NewRaycastResult()
	if r.T != -1 || r.Hit || r.Point != rl.Vector2Zero() || r.Normal != rl.Vector2Zero() {
		t.Fatalf("NewRaycastResult() = %+v, want sentinel", *r)
	}
	r.Set(rl.NewVector2(1, 2), rl.NewVector2(0, 1), 3, true)
	ResetResult(r)
	if r.T != -1 || r.Hit {
		t.Errorf("after ResetResult: %+v", *r)
	}
	ResetResult(nil)
}
