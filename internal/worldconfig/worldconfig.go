package worldconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// WorldConfigPath is the path to the world config file, relative to the process working directory.
const WorldConfigPath = "config/world.yaml"

// Shape names accepted in BodyDef.Shape.
const (
	ShapeCircle = "circle"
	ShapeAABB   = "aabb"
	ShapeBox    = "box"
)

// Vec2 is a YAML-friendly 2D vector.
type Vec2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// V converts to a raylib vector.
func (v Vec2) V() rl.Vector2 { return rl.NewVector2(v.X, v.Y) }

// BodyDef describes one body and the shape attached to it.
// Static bodies ignore Mass and never move.
type BodyDef struct {
	Name            string  `yaml:"name,omitempty"`
	Shape           string  `yaml:"shape"`
	Position        Vec2    `yaml:"position"`
	Rotation        float32 `yaml:"rotation,omitempty"`
	Radius          float32 `yaml:"radius,omitempty"`
	Size            Vec2    `yaml:"size,omitempty"`
	Mass            float32 `yaml:"mass,omitempty"`
	Velocity        Vec2    `yaml:"velocity,omitempty"`
	AngularVelocity float32 `yaml:"angular_velocity,omitempty"`
	LinearDamping   float32 `yaml:"linear_damping,omitempty"`
	FixedRotation   bool    `yaml:"fixed_rotation,omitempty"`
	Static          bool    `yaml:"static,omitempty"`
}

// WorldConfig holds everything needed to build and run a world.
type WorldConfig struct {
	FixedDt  float32   `yaml:"fixed_dt"`
	Gravity  Vec2      `yaml:"gravity"`
	Steps    int       `yaml:"steps"`
	LogLevel string    `yaml:"log_level,omitempty"`
	Bodies   []BodyDef `yaml:"bodies"`
}

// Default returns a 60 Hz world with earth gravity, a static floor and one falling ball.
func Default() WorldConfig {
	return WorldConfig{
		FixedDt:  1.0 / 60,
		Gravity:  Vec2{X: 0, Y: -9.8},
		Steps:    60,
		LogLevel: "info",
		Bodies: []BodyDef{
			{Name: "floor", Shape: ShapeAABB, Position: Vec2{0, -1}, Size: Vec2{20, 1}, Static: true},
			{Name: "ball", Shape: ShapeCircle, Position: Vec2{0, 5}, Radius: 0.5, Mass: 1},
		},
	}
}

// Load reads the world config from config/world.yaml. If the file is missing, returns
// Default() and does not create a file.
func Load() (WorldConfig, error) {
	return LoadFile(WorldConfigPath)
}

// LoadFile reads the world config at path. A missing file yields Default(); a file that
// does not parse or validate is an error.
func LoadFile(path string) (WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("worldconfig: %w", err)
	}
	var c WorldConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("worldconfig: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes the world config to config/world.yaml, creating the config directory if needed.
func Save(c WorldConfig) error {
	return SaveFile(WorldConfigPath, c)
}

// SaveFile writes c to path as YAML.
func SaveFile(path string, c WorldConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the world can be built.
func (c WorldConfig) Validate() error {
	if c.FixedDt <= 0 {
		return fmt.Errorf("worldconfig: fixed_dt must be positive, got %v", c.FixedDt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("worldconfig: steps must not be negative, got %d", c.Steps)
	}
	for i, b := range c.Bodies {
		if err := b.validate(); err != nil {
			return fmt.Errorf("worldconfig: body %d (%s): %w", i, b.Name, err)
		}
	}
	return nil
}

func (b BodyDef) validate() error {
	switch b.Shape {
	case ShapeCircle:
		if b.Radius <= 0 {
			return fmt.Errorf("circle radius must be positive, got %v", b.Radius)
		}
	case ShapeAABB, ShapeBox:
		if b.Size.X <= 0 || b.Size.Y <= 0 {
			return fmt.Errorf("%s size must be positive, got (%v, %v)", b.Shape, b.Size.X, b.Size.Y)
		}
	default:
		return fmt.Errorf("unknown shape %q", b.Shape)
	}
	if b.Mass < 0 {
		return fmt.Errorf("mass must not be negative, got %v", b.Mass)
	}
	return nil
}
