package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"physics-engine/internal/commands"
	"physics-engine/internal/logger"
	"physics-engine/internal/physics"
	"physics-engine/internal/physics/collision"
	"physics-engine/internal/physics/intersect"
	"physics-engine/internal/physics/primitives"
	"physics-engine/internal/worldconfig"
)

// scene is a built world plus the config it came from.
type scene struct {
	cfg    worldconfig.WorldConfig
	world  *physics.World
	shapes []primitives.Shape
}

func (s *scene) name(i int) string {
	if n := s.cfg.Bodies[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("#%d", i)
}

// loadScene reads the config at path, applies environment overrides and builds the world.
func loadScene(path string, log *logger.Logger) (*scene, error) {
	cfg, err := worldconfig.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := worldconfig.ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("%v", err)
	}
	w, shapes, err := worldconfig.Build(cfg, physics.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %s: %d bodies, dt=%.4f, gravity=(%.2f, %.2f)", path, len(shapes), cfg.FixedDt, cfg.Gravity.X, cfg.Gravity.Y)
	return &scene{cfg: cfg, world: w, shapes: shapes}, nil
}

func (s *scene) run(steps int) {
	for i := 0; i < steps; i++ {
		s.world.FixedStep()
	}
}

func encode(out io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown format %q (want yaml or json)", format)
}

func newRegistry(log *logger.Logger, out io.Writer) *commands.Registry {
	reg := commands.NewRegistry()
	registerSimulate(reg, log, out)
	registerRaycast(reg, log, out)
	registerOverlap(reg, log, out)
	return reg
}

type bodyReport struct {
	Name  string            `json:"name" yaml:"name"`
	Shape string            `json:"shape" yaml:"shape"`
	State physics.BodyState `json:"state" yaml:"state"`
}

type simulateReport struct {
	Steps   int          `json:"steps" yaml:"steps"`
	Elapsed float32      `json:"elapsed" yaml:"elapsed"`
	Bodies  []bodyReport `json:"bodies" yaml:"bodies"`
}

func registerSimulate(reg *commands.Registry, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	configPath := fs.String("config", worldconfig.WorldConfigPath, "world config file")
	steps := fs.Int("steps", -1, "number of fixed steps (-1 uses the config)")
	format := fs.String("format", "yaml", "output format: yaml or json")

	reg.Register("simulate", "step the configured world and print body states", fs, func() error {
		s, err := loadScene(*configPath, log)
		if err != nil {
			return err
		}
		n := s.cfg.Steps
		if *steps >= 0 {
			n = *steps
		}
		s.run(n)

		states, err := s.world.Snapshot()
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		report := simulateReport{Steps: n, Elapsed: float32(n) * s.world.FixedDt()}
		for i, st := range states {
			report.Bodies = append(report.Bodies, bodyReport{Name: s.name(i), Shape: s.shapes[i].Kind().String(), State: st})
		}
		log.Infof("simulated %d steps", n)
		return encode(out, *format, report)
	})
}

type raycastReport struct {
	Hit    bool       `json:"hit" yaml:"hit"`
	Body   string     `json:"body,omitempty" yaml:"body,omitempty"`
	Point  rl.Vector2 `json:"point" yaml:"point"`
	Normal rl.Vector2 `json:"normal" yaml:"normal"`
	T      float32    `json:"t" yaml:"t"`
}

func registerRaycast(reg *commands.Registry, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("raycast", flag.ContinueOnError)
	configPath := fs.String("config", worldconfig.WorldConfigPath, "world config file")
	ox := fs.Float64("ox", 0, "ray origin x")
	oy := fs.Float64("oy", 0, "ray origin y")
	dx := fs.Float64("dx", 1, "ray direction x")
	dy := fs.Float64("dy", 0, "ray direction y")
	maxT := fs.Float64("max", 0, "maximum hit distance (0 is unbounded)")
	steps := fs.Int("steps", 0, "fixed steps to run before casting")
	format := fs.String("format", "yaml", "output format: yaml or json")

	reg.Register("raycast", "cast a ray against every configured shape", fs, func() error {
		s, err := loadScene(*configPath, log)
		if err != nil {
			return err
		}
		s.run(*steps)

		ray := primitives.NewRay(rl.NewVector2(float32(*ox), float32(*oy)), rl.NewVector2(float32(*dx), float32(*dy)))
		if *maxT > 0 {
			ray = ray.WithMaximum(float32(math.Min(*maxT, math.MaxFloat32)))
		}
		result := primitives.NewRaycastResult()
		idx := intersect.RaycastAll(ray, s.shapes, result)

		report := raycastReport{Hit: result.Hit, Point: result.Point, Normal: result.Normal, T: result.T}
		if idx >= 0 {
			report.Body = s.name(idx)
			log.Infof("ray hit %s at t=%.4f", report.Body, result.T)
		} else {
			log.Infof("ray missed")
		}
		return encode(out, *format, report)
	})
}

type overlapReport struct {
	A        string              `json:"a" yaml:"a"`
	B        string              `json:"b" yaml:"b"`
	Manifold *collision.Manifold `json:"manifold,omitempty" yaml:"manifold,omitempty"`
	Note     string              `json:"note,omitempty" yaml:"note,omitempty"`
}

func registerOverlap(reg *commands.Registry, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("overlap", flag.ContinueOnError)
	configPath := fs.String("config", worldconfig.WorldConfigPath, "world config file")
	steps := fs.Int("steps", 0, "fixed steps to run before testing")
	format := fs.String("format", "yaml", "output format: yaml or json")

	reg.Register("overlap", "list overlapping shape pairs and their manifolds", fs, func() error {
		s, err := loadScene(*configPath, log)
		if err != nil {
			return err
		}
		s.run(*steps)

		pairs := overlappingPairs(s, log)
		log.Infof("%d overlapping pairs", len(pairs))
		return encode(out, *format, pairs)
	})
}

// overlappingPairs tests every pair once. Pairs without a manifold builder are still
// reported, with the reason.
func overlappingPairs(s *scene, log *logger.Logger) []overlapReport {
	pairs := []overlapReport{}
	for i := 0; i < len(s.shapes); i++ {
		for j := i + 1; j < len(s.shapes); j++ {
			a, b := s.shapes[i], s.shapes[j]
			if !intersect.Overlap(a, b) {
				continue
			}
			r := overlapReport{A: s.name(i), B: s.name(j)}
			m, err := collision.FindCollisionFeatures(a, b)
			if err != nil {
				log.Debugf("overlap %s/%s: %v", r.A, r.B, err)
				r.Note = err.Error()
			} else {
				r.Manifold = &m
			}
			pairs = append(pairs, r)
		}
	}
	return pairs
}
