package debug

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics/body"
	"physics-engine/internal/physics/primitives"
)

func TestOutlineWalksEdges(t *testing.T) {
	a := primitives.NewAABBSize(rl.NewVector2(2, 2))
	a.SetBody(body.New(rl.Vector2Zero()))
	pts := Outline(a)
	want := []rl.Vector2{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}

	c := primitives.NewCircle(1)
	c.SetBody(body.New(rl.Vector2Zero()))
	if Outline(c) != nil {
		t.Error("Outline(circle) != nil")
	}
}

func TestShapeColor(t *testing.T) {
	static := primitives.NewCircle(1)
	static.SetBody(body.New(rl.Vector2Zero()))
	dynamic := primitives.NewCircle(1)
	rb := body.New(rl.Vector2Zero())
	rb.SetMass(1)
	dynamic.SetBody(rb)

	if ShapeColor(static, false) != StaticColor {
		t.Error("static shape not drawn in StaticColor")
	}
	if ShapeColor(dynamic, false) != DynamicColor {
		t.Error("dynamic shape not drawn in DynamicColor")
	}
	if ShapeColor(static, true) != HitColor {
		t.Error("hit shape not drawn in HitColor")
	}
}

func TestStatsText(t *testing.T) {
	if got, want := StatsText(3, 120, 1), "Bodies: 3  Steps: 120  Contacts: 1"; got != want {
		t.Errorf("StatsText() = %q, want %q", got, want)
	}
}
