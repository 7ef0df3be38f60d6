package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/debug"
	"physics-engine/internal/env"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/mapgen"
	"physics-engine/internal/physics"
	"physics-engine/internal/physics/collision"
	"physics-engine/internal/physics/intersect"
	"physics-engine/internal/physics/primitives"
	"physics-engine/internal/terminal"
	"physics-engine/internal/worldconfig"
)

func main() {
	configPath := flag.String("config", worldconfig.WorldConfigPath, "world config file")
	seed := flag.Int64("seed", 0, "terrain seed (0 picks one from the clock)")
	terrain := flag.Bool("terrain", true, "add generated terrain and debris")
	flag.Parse()

	log := logger.New()
	keys, err := env.Load(".env")
	if err != nil {
		log.Warnf("%v", err)
	}
	for _, k := range keys {
		log.Debugf("env: %s=%s", k, os.Getenv(k))
	}
	sb, err := load(*configPath, *seed, *terrain, log)
	if err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
	run(sb)
}

// load builds the sandbox world from the config plus optional generated terrain.
func load(configPath string, seed int64, terrain bool, log *logger.Logger) (*sandbox, error) {
	cfg, err := worldconfig.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := worldconfig.ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	if terrain {
		opts := mapgen.DefaultTerrainOptions()
		opts.Seed = seed
		cfg.Bodies = append(cfg.Bodies, mapgen.GenerateTerrain(opts)...)
		cfg.Bodies = append(cfg.Bodies, mapgen.GenerateDebris(opts)...)
	}
	world, shapes, err := worldconfig.Build(cfg, physics.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Infof("sandbox: %d bodies", len(shapes))
	return &sandbox{world: world, shapes: shapes, log: log}, nil
}

// contacts returns the manifolds of every overlapping pair that has a manifold builder.
func contacts(shapes []primitives.Shape, dst []collision.Manifold) []collision.Manifold {
	dst = dst[:0]
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			if !intersect.Overlap(shapes[i], shapes[j]) {
				continue
			}
			if m, err := collision.FindCollisionFeatures(shapes[i], shapes[j]); err == nil {
				dst = append(dst, m)
			}
		}
	}
	return dst
}

func run(sb *sandbox) {
	win := graphics.DefaultWindow()
	cam := win.Camera()
	dbg := debug.New()
	dbg.SetShowFPS(true)
	dbg.ShowStats = true
	term := terminal.New(sb.log, newConsole(sb))

	var (
		hitIndex  = -1
		ray       primitives.Ray
		result    = primitives.NewRaycastResult()
		manifolds []collision.Manifold
	)
	origin := rl.NewVector2(0, 10)

	update := func(frameTime float32) {
		term.Update()
		if !term.IsOpen() {
			if rl.IsKeyPressed(rl.KeySpace) {
				sb.paused = !sb.paused
			}
			if rl.IsKeyPressed(rl.KeyM) {
				dbg.SetShowMemAlloc(!dbg.ShowMemAlloc)
			}
			if sb.paused && rl.IsKeyPressed(rl.KeyPeriod) {
				sb.step(1)
			}
		}
		if !sb.paused {
			// One fixed step per frame; frameTime is not accumulated.
			sb.world.Step(frameTime)
			sb.steps++
		}

		mouse := graphics.ScreenToWorld(cam, rl.GetMousePosition())
		if rl.IsMouseButtonDown(rl.MouseButtonRight) {
			origin = mouse
		}
		ray = primitives.NewRay(origin, rl.Vector2Subtract(mouse, origin))
		hitIndex = intersect.RaycastAll(ray, sb.shapes, result)

		manifolds = contacts(sb.shapes, manifolds)
		dbg.SetStats(len(sb.world.Bodies()), sb.steps, len(manifolds))
	}

	drawWorld := func() {
		for i, s := range sb.shapes {
			debug.DrawShape(s, debug.ShapeColor(s, i == hitIndex))
		}
		debug.DrawRay(ray, result, 100)
		for _, m := range manifolds {
			debug.DrawManifold(m)
		}
	}

	drawOverlay := func() {
		rl.DrawText("SPACE pause  . step  RMB move ray origin  M memory  ` console", 12, 12, 20, rl.LightGray)
		dbg.Draw()
		term.Draw()
	}

	graphics.Run(win, update, drawWorld, drawOverlay)
}
