package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/commands"
	"physics-engine/internal/logger"
	"physics-engine/internal/physics"
	"physics-engine/internal/physics/forces"
	"physics-engine/internal/physics/primitives"
	"physics-engine/internal/worldconfig"
)

// sandbox is the mutable state shared by the frame loop and the console commands.
type sandbox struct {
	world  *physics.World
	shapes []primitives.Shape
	log    *logger.Logger
	paused bool
	steps  int
}

func (sb *sandbox) step(n int) {
	for i := 0; i < n; i++ {
		sb.world.FixedStep()
		sb.steps++
	}
}

// coast runs n fixed steps whose generated forces are zeroed before integration,
// so every body moves on its current velocity alone.
func (sb *sandbox) coast(n int) {
	dt := sb.world.FixedDt()
	reg := sb.world.Registry()
	for i := 0; i < n; i++ {
		reg.UpdateForces(dt)
		reg.ZeroForces()
		for _, b := range sb.world.Bodies() {
			b.Integrate(dt)
		}
		sb.steps++
	}
}

func (sb *sandbox) spawn(def worldconfig.BodyDef) error {
	cfg := worldconfig.Default()
	cfg.Bodies = []worldconfig.BodyDef{def}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s := worldconfig.NewShape(def)
	sb.world.AddBody(s.Body())
	sb.shapes = append(sb.shapes, s)
	return nil
}

func (sb *sandbox) remove(index int) error {
	if index < 0 || index >= len(sb.shapes) {
		return fmt.Errorf("remove: index %d out of range [0, %d)", index, len(sb.shapes))
	}
	sb.world.RemoveBody(sb.shapes[index].Body())
	sb.shapes = slices.Delete(sb.shapes, index, index+1)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// newConsole registers the in-window console commands.
func newConsole(sb *sandbox) *commands.Registry {
	reg := commands.NewRegistry()

	fs := newFlagSet("gravity")
	gx := fs.Float64("x", 0, "gravity x")
	gy := fs.Float64("y", -9.8, "gravity y")
	reg.Register("gravity", "set the world gravity", fs, func() error {
		sb.world.SetGravity(rl.NewVector2(float32(*gx), float32(*gy)))
		sb.log.Infof("gravity = (%.2f, %.2f)", *gx, *gy)
		return nil
	})

	reg.Register("pause", "toggle the simulation", newFlagSet("pause"), func() error {
		sb.paused = !sb.paused
		sb.log.Infof("paused = %v", sb.paused)
		return nil
	})

	fs = newFlagSet("step")
	n := fs.Int("n", 1, "number of fixed steps")
	reg.Register("step", "run fixed steps", fs, func() error {
		if *n < 0 {
			return fmt.Errorf("step: n must not be negative")
		}
		sb.step(*n)
		return nil
	})

	fs = newFlagSet("spawn")
	shape := fs.String("shape", worldconfig.ShapeCircle, "circle, aabb or box")
	x := fs.Float64("x", 0, "position x")
	y := fs.Float64("y", 5, "position y")
	size := fs.Float64("size", 1, "box size or circle diameter")
	rot := fs.Float64("rot", 0, "rotation in degrees")
	mass := fs.Float64("mass", 1, "mass (0 is static)")
	reg.Register("spawn", "add a body", fs, func() error {
		def := worldconfig.BodyDef{
			Shape:    *shape,
			Position: worldconfig.Vec2{X: float32(*x), Y: float32(*y)},
			Rotation: float32(*rot),
			Mass:     float32(*mass),
			Static:   *mass == 0,
		}
		if *shape == worldconfig.ShapeCircle {
			def.Radius = float32(*size) / 2
		} else {
			def.Size = worldconfig.Vec2{X: float32(*size), Y: float32(*size)}
		}
		if err := sb.spawn(def); err != nil {
			return err
		}
		sb.log.Infof("spawned %s #%d", *shape, len(sb.shapes)-1)
		return nil
	})

	fs = newFlagSet("remove")
	index := fs.Int("i", -1, "shape index")
	reg.Register("remove", "remove a body by index", fs, func() error {
		return sb.remove(*index)
	})

	fs = newFlagSet("drag")
	k1 := fs.Float64("k1", 0.1, "linear drag coefficient")
	k2 := fs.Float64("k2", 0.01, "quadratic drag coefficient")
	reg.Register("drag", "add drag to every dynamic body", fs, func() error {
		d := &forces.Drag{K1: float32(*k1), K2: float32(*k2)}
		count := 0
		for _, b := range sb.world.Bodies() {
			if !b.IsStatic() {
				sb.world.Registry().Register(b, d)
				count++
			}
		}
		sb.log.Infof("drag added to %d bodies", count)
		return nil
	})

	fs = newFlagSet("zero")
	coast := fs.Int("n", 1, "number of force-free steps")
	reg.Register("zero", "step with registered forces zeroed", fs, func() error {
		if *coast < 0 {
			return fmt.Errorf("zero: n must not be negative")
		}
		sb.coast(*coast)
		return nil
	})

	return reg
}
