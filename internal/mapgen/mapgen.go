package mapgen

import (
	"time"

	"github.com/chewxy/math32"

	"physics-engine/internal/mathutil"
	"physics-engine/internal/worldconfig"
)

// TerrainOptions controls procedural terrain generation.
// Columns is the number of ground tiles; TileWidth is the world width of one tile.
// HeightScale is the maximum height of a column in world units, BaseY the bottom of the terrain.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
// Debris is the number of dynamic boxes and circles dropped above the terrain.
type TerrainOptions struct {
	Columns     int
	TileWidth   float32
	HeightScale float32
	BaseY       float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32

	Debris int
}

// DefaultTerrainOptions returns a sane default configuration.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Columns:     32,
		TileWidth:   1.0,
		HeightScale: 3.0,
		BaseY:       -6,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
		Debris:      8,
	}
}

func (o TerrainOptions) withDefaults() TerrainOptions {
	if o.TileWidth <= 0 {
		o.TileWidth = 1
	}
	if o.HeightScale <= 0 {
		o.HeightScale = 1
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// GenerateTerrain builds a row of static AABB columns sitting on BaseY. Each column's height
// is derived from fractal noise. The row is centered around x = 0.
func GenerateTerrain(opts TerrainOptions) []worldconfig.BodyDef {
	if opts.Columns <= 0 {
		return nil
	}
	opts = opts.withDefaults()

	// First column center is at -extent + halfTile.
	halfTile := opts.TileWidth * 0.5
	startX := -float32(opts.Columns)*opts.TileWidth*0.5 + halfTile

	defs := make([]worldconfig.BodyDef, 0, opts.Columns)
	for x := 0; x < opts.Columns; x++ {
		h := fractalValueNoise2D(float32(x)*opts.Frequency, 0, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		// Map [0,1] noise to [minHeight, HeightScale].
		minHeight := float32(0.15)
		height := minHeight + h*(opts.HeightScale-minHeight)
		if !mathutil.IsFinite(height) || height <= 0 {
			height = minHeight
		}

		defs = append(defs, worldconfig.BodyDef{
			Shape:    worldconfig.ShapeAABB,
			Position: worldconfig.Vec2{X: startX + float32(x)*opts.TileWidth, Y: opts.BaseY + height*0.5},
			Size:     worldconfig.Vec2{X: opts.TileWidth, Y: height},
			Static:   true,
		})
	}
	return defs
}

// GenerateDebris scatters opts.Debris dynamic bodies above the terrain, alternating
// oriented boxes and circles. Positions, sizes and rotations come from the same noise field.
func GenerateDebris(opts TerrainOptions) []worldconfig.BodyDef {
	if opts.Debris <= 0 {
		return nil
	}
	opts = opts.withDefaults()
	span := float32(max(opts.Columns, 1)) * opts.TileWidth
	top := opts.BaseY + opts.HeightScale

	defs := make([]worldconfig.BodyDef, 0, opts.Debris)
	for i := 0; i < opts.Debris; i++ {
		fi := float32(i)
		nx := hash2D(int32(i), 1, int32(opts.Seed))
		ny := hash2D(int32(i), 2, int32(opts.Seed))
		ns := valueNoise2D(fi*0.37, 3.5, int32(opts.Seed))

		def := worldconfig.BodyDef{
			Position: worldconfig.Vec2{X: (nx - 0.5) * span * 0.8, Y: top + 2 + ny*6},
			Mass:     0.5 + ns*2,
		}
		size := 0.4 + ns*0.8
		if i%2 == 0 {
			def.Shape = worldconfig.ShapeBox
			def.Size = worldconfig.Vec2{X: size, Y: size}
			def.Rotation = hash2D(int32(i), 4, int32(opts.Seed)) * 90
		} else {
			def.Shape = worldconfig.ShapeCircle
			def.Radius = size * 0.5
		}
		defs = append(defs, def)
	}
	return defs
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and bicubic-like easing.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
