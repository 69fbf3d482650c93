package generators

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"islandsim/terrain"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	// Octaves of the underlying perlin generator; the fractal sum layers on
	// top of this with its own octave count.
	perlinOctaves = 3
)

// FractalNoise generates an island-shaped heightmap: layered perlin noise
// summed at doubling frequency and decaying amplitude, attenuated by a
// radial falloff so elevation drops toward the grid edges, then normalized
// to [0, 1]. Output is a pure function of the constructor arguments.
type FractalNoise struct {
	width, height int
	seed          int64
	octaves       int
	frequency     float64
	persistence   float64
	falloffShape  float64
	heightmap     *terrain.HeightMap
}

func NewFractalNoise(width, height int, seed int64, octaves int, frequency, persistence, falloffShape float64) (*FractalNoise, error) {
	heightmap, err := terrain.NewHeightMap(width, height)
	if err != nil {
		return nil, err
	}
	if octaves <= 0 {
		return nil, fmt.Errorf("generators: octaves must be positive, got %d", octaves)
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("generators: frequency must be positive, got %f", frequency)
	}
	if persistence <= 0 || persistence > 1 {
		return nil, fmt.Errorf("generators: persistence must be in (0, 1], got %f", persistence)
	}
	if falloffShape <= 0 {
		return nil, fmt.Errorf("generators: falloff shape must be positive, got %f", falloffShape)
	}
	return &FractalNoise{
		width:        width,
		height:       height,
		seed:         seed,
		octaves:      octaves,
		frequency:    frequency,
		persistence:  persistence,
		falloffShape: falloffShape,
		heightmap:    heightmap,
	}, nil
}

func (f *FractalNoise) Heightmap() *terrain.HeightMap {
	return f.heightmap
}

func (f *FractalNoise) Dimensions() (int, int) {
	return f.width, f.height
}

func (f *FractalNoise) Generate() error {
	var noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, f.seed)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			// Map the cell into [-1, 1] on both axes so the falloff is
			// resolution independent.
			var nx = 2*float64(x)/float64(f.width) - 1
			var ny = 2*float64(y)/float64(f.height) - 1
			var elevation = f.fractal(noise, nx, ny) * f.falloff(nx, ny)
			f.heightmap.Set(x, y, float32(elevation))
		}
	}
	f.heightmap.Normalize()
	return nil
}

// fractal sums octave layers of coherent noise, each at double the frequency
// and persistence-scaled amplitude of the last, remapped to [0, 1].
func (f *FractalNoise) fractal(noise *perlin.Perlin, nx, ny float64) float64 {
	var total, amplitude, maxValue = 0.0, 1.0, 0.0
	var frequency = f.frequency
	for octave := 0; octave < f.octaves; octave++ {
		total += noise.Noise2D(nx*frequency, ny*frequency) * amplitude
		maxValue += amplitude
		amplitude *= f.persistence
		frequency *= 2
	}
	return total/maxValue*0.5 + 0.5
}

// falloff is the radial island mask: 1 at the centre, 0 at and beyond the
// unit circle touching the grid edges. The shape exponent controls how
// abruptly the shoreline drops.
func (f *FractalNoise) falloff(nx, ny float64) float64 {
	var distance = math.Sqrt(nx*nx + ny*ny)
	if distance >= 1 {
		return 0
	}
	return 1 - math.Pow(distance, f.falloffShape)
}

var _ TerrainGenerator = (*FractalNoise)(nil)
