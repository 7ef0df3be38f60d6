package worldconfig

import (
	"fmt"
	"os"
	"strconv"

	"physics-engine/internal/physics"
	"physics-engine/internal/physics/body"
	"physics-engine/internal/physics/primitives"
)

// Environment overrides, typically set through a .env file loaded with env.Load.
const (
	EnvFixedDt  = "PHYSICS_FIXED_DT"
	EnvGravityY = "PHYSICS_GRAVITY_Y"
)

// Build creates a world from c. Shapes are returned in the same order as c.Bodies, each
// attached to the body that was added to the world.
func Build(c WorldConfig, opts ...physics.Option) (*physics.World, []primitives.Shape, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	w := physics.NewWorld(c.FixedDt, c.Gravity.V(), opts...)
	shapes := make([]primitives.Shape, 0, len(c.Bodies))
	for _, def := range c.Bodies {
		s := NewShape(def)
		w.AddBody(s.Body())
		shapes = append(shapes, s)
	}
	return w, shapes, nil
}

// NewShape builds the body and shape described by def. def must be valid.
func NewShape(def BodyDef) primitives.Shape {
	rb := body.NewWithRotation(def.Position.V(), def.Rotation)
	if !def.Static {
		rb.SetMass(def.Mass)
	}
	rb.LinearVelocity = def.Velocity.V()
	rb.AngularVelocity = def.AngularVelocity
	rb.LinearDamping = def.LinearDamping
	rb.FixedRotation = def.FixedRotation

	switch def.Shape {
	case ShapeCircle:
		c := primitives.NewCircle(def.Radius)
		c.SetBody(rb)
		return c
	case ShapeAABB:
		a := primitives.NewAABBSize(def.Size.V())
		a.SetBody(rb)
		return a
	default:
		b := primitives.NewBoxSize(def.Size.V())
		b.SetBody(rb)
		return b
	}
}

// ApplyEnv overrides the timestep and vertical gravity from PHYSICS_FIXED_DT and
// PHYSICS_GRAVITY_Y when they are set.
func ApplyEnv(c *WorldConfig) error {
	if v, ok := os.LookupEnv(EnvFixedDt); ok && v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil || f <= 0 {
			return fmt.Errorf("worldconfig: invalid %s=%q", EnvFixedDt, v)
		}
		c.FixedDt = float32(f)
	}
	if v, ok := os.LookupEnv(EnvGravityY); ok && v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("worldconfig: invalid %s=%q: %w", EnvGravityY, v, err)
		}
		c.Gravity.Y = float32(f)
	}
	return nil
}
