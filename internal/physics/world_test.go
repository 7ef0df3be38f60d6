package physics

import (
	"bytes"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/logger"
	"physics-engine/internal/mathutil"
	"physics-engine/internal/physics/body"
	"physics-engine/internal/physics/forces"
)

const (
	dt        = float32(1.0 / 60)
	tolerance = 1e-5
)

func dynamicBody(x, y, mass float32) *body.Rigidbody {
	b := body.New(rl.NewVector2(x, y))
	b.SetMass(mass)
	return b
}

func TestFixedStepAppliesGravity(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -10))
	b := dynamicBody(0, 10, 2)
	w.AddBody(b)
	w.FixedStep()

	wantV := rl.NewVector2(0, -10*dt)
	wantP := rl.NewVector2(0, 10+wantV.Y*dt)
	if !mathutil.CompareVec(b.LinearVelocity, wantV, tolerance) {
		t.Errorf("velocity = %v, want %v", b.LinearVelocity, wantV)
	}
	if !mathutil.CompareVec(b.Position, wantP, tolerance) {
		t.Errorf("position = %v, want %v", b.Position, wantP)
	}
	if b.ForceAccumulator() != rl.Vector2Zero() {
		t.Errorf("accumulator = %v after step, want zero", b.ForceAccumulator())
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -10))
	floor := body.New(rl.NewVector2(0, -1))
	w.AddBody(floor)
	for i := 0; i < 120; i++ {
		w.FixedStep()
	}
	if floor.Position != rl.NewVector2(0, -1) || floor.LinearVelocity != rl.Vector2Zero() {
		t.Errorf("static body moved: pos=%v vel=%v", floor.Position, floor.LinearVelocity)
	}
}

func TestStepIgnoresDt(t *testing.T) {
	a := NewWorld(dt, rl.NewVector2(0, -10))
	b := NewWorld(dt, rl.NewVector2(0, -10))
	ba, bb := dynamicBody(0, 0, 1), dynamicBody(0, 0, 1)
	a.AddBody(ba)
	b.AddBody(bb)

	a.Step(5)
	b.FixedStep()
	if ba.Position != bb.Position || ba.LinearVelocity != bb.LinearVelocity {
		t.Errorf("Step(5) = %v/%v, FixedStep = %v/%v", ba.Position, ba.LinearVelocity, bb.Position, bb.LinearVelocity)
	}
}

func TestFallingBodyAccumulatesVelocity(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -9.8))
	b := dynamicBody(0, 100, 1)
	w.AddBody(b)
	for i := 0; i < 60; i++ {
		w.FixedStep()
	}
	if !mathutil.Compare(b.LinearVelocity.Y, -9.8, 1e-4) {
		t.Errorf("velocity after 1s = %v, want -9.8", b.LinearVelocity.Y)
	}
	if b.Position.Y >= 100-4.9 {
		t.Errorf("semi-implicit Euler should fall at least 4.9 in 1s, y = %v", b.Position.Y)
	}
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -10))
	a, b := dynamicBody(0, 0, 1), dynamicBody(5, 0, 1)
	w.AddBody(a)
	w.AddBody(b)
	w.Registry().Register(a, &forces.Drag{K1: 1})

	if !w.RemoveBody(a) {
		t.Fatal("RemoveBody(a) = false, want true")
	}
	if w.RemoveBody(a) {
		t.Error("second RemoveBody(a) = true, want false")
	}
	if len(w.Bodies()) != 1 || w.Bodies()[0] != b {
		t.Errorf("Bodies() = %v", w.Bodies())
	}
	if w.Registry().Len() != 1 {
		t.Errorf("Registry().Len() = %d, want 1", w.Registry().Len())
	}

	w.FixedStep()
	if a.Position != rl.Vector2Zero() {
		t.Errorf("removed body moved to %v", a.Position)
	}
}

func TestSetGravityAffectsExistingBodies(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -10))
	b := dynamicBody(0, 0, 1)
	w.AddBody(b)
	w.SetGravity(rl.NewVector2(10, 0))
	if w.Gravity() != rl.NewVector2(10, 0) {
		t.Errorf("Gravity() = %v", w.Gravity())
	}
	w.FixedStep()
	if b.LinearVelocity.X <= 0 || b.LinearVelocity.Y != 0 {
		t.Errorf("velocity = %v, want +x only", b.LinearVelocity)
	}
}

func TestSnapshot(t *testing.T) {
	w := NewWorld(dt, rl.NewVector2(0, -10))
	b := dynamicBody(1, 2, 3)
	b.Rotation = 45
	b.AngularVelocity = 2
	w.AddBody(b)
	w.AddBody(body.New(rl.NewVector2(0, -5)))

	states, err := w.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("len = %d, want 2", len(states))
	}
	s := states[0]
	if s.Position != rl.NewVector2(1, 2) || s.Rotation != 45 || s.AngularVelocity != 2 || s.Mass != 3 || s.Static {
		t.Errorf("states[0] = %+v", s)
	}
	if !states[1].Static {
		t.Errorf("states[1].Static = false, want true")
	}

	states[0].Position = rl.NewVector2(99, 99)
	if b.Position != rl.NewVector2(1, 2) {
		t.Error("mutating a snapshot moved the body")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)
	log.SetLevel(logger.LevelDebug)
	w := NewWorld(dt, rl.NewVector2(0, -10), WithLogger(log))
	b := dynamicBody(0, 0, 1)
	w.AddBody(b)
	w.RemoveBody(b)
	out := buf.String()
	if !strings.Contains(out, "added body 0") || !strings.Contains(out, "removed body 0") {
		t.Errorf("log output = %q", out)
	}
	if w.FixedDt() != dt {
		t.Errorf("FixedDt() = %v, want %v", w.FixedDt(), dt)
	}
}
