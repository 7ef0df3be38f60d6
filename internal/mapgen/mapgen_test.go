package mapgen

import (
	"testing"

	"physics-engine/internal/worldconfig"
)

func TestGenerateTerrainDeterministic(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Seed = 42
	a := GenerateTerrain(opts)
	b := GenerateTerrain(opts)
	if len(a) != opts.Columns {
		t.Fatalf("len = %d, want %d", len(a), opts.Columns)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("column %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateTerrainColumns(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Seed = 7
	opts.Columns = 10
	opts.TileWidth = 2
	defs := GenerateTerrain(opts)

	if defs[0].Position.X != -9 || defs[9].Position.X != 9 {
		t.Errorf("columns span %v..%v, want -9..9", defs[0].Position.X, defs[9].Position.X)
	}
	for i, d := range defs {
		if d.Shape != worldconfig.ShapeAABB || !d.Static {
			t.Errorf("column %d = %+v, want static aabb", i, d)
		}
		if d.Size.Y < 0.15 || d.Size.Y > opts.HeightScale+1e-4 {
			t.Errorf("column %d height %v out of range", i, d.Size.Y)
		}
		bottom := d.Position.Y - d.Size.Y/2
		if diff := bottom - opts.BaseY; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("column %d bottom = %v, want %v", i, bottom, opts.BaseY)
		}
	}

	valid := worldconfig.Default()
	valid.Bodies = defs
	if err := valid.Validate(); err != nil {
		t.Errorf("terrain does not validate: %v", err)
	}
}

func TestGenerateTerrainEmpty(t *testing.T) {
	if got := GenerateTerrain(TerrainOptions{}); got != nil {
		t.Errorf("GenerateTerrain(zero) = %v, want nil", got)
	}
}

func TestGenerateDebris(t *testing.T) {
	opts := DefaultTerrainOptions()
	opts.Seed = 3
	opts.Debris = 6
	defs := GenerateDebris(opts)
	if len(defs) != 6 {
		t.Fatalf("len = %d, want 6", len(defs))
	}
	top := opts.BaseY + opts.HeightScale
	for i, d := range defs {
		want := worldconfig.ShapeBox
		if i%2 == 1 {
			want = worldconfig.ShapeCircle
		}
		if d.Shape != want {
			t.Errorf("debris %d shape = %q, want %q", i, d.Shape, want)
		}
		if d.Static || d.Mass <= 0 {
			t.Errorf("debris %d should be dynamic: %+v", i, d)
		}
		if d.Position.Y <= top {
			t.Errorf("debris %d starts inside terrain at y=%v", i, d.Position.Y)
		}
	}
	cfg := worldconfig.Default()
	cfg.Bodies = defs
	if err := cfg.Validate(); err != nil {
		t.Errorf("debris does not validate: %v", err)
	}
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float32(i) * 0.173
		n := fractalValueNoise2D(x, x*0.5, 11, 4, 2, 0.5)
		if n < 0 || n > 1 {
			t.Fatalf("fractalValueNoise2D(%v) = %v, out of [0,1]", x, n)
		}
	}
}
