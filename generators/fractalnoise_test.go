package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFractal(t *testing.T, seed int64) *FractalNoise {
	t.Helper()
	gen, err := NewFractalNoise(64, 64, seed, 4, 2.0, 0.5, 2.0)
	require.NoError(t, err)
	return gen
}

func TestFractalNoiseDeterministic(t *testing.T) {
	a := newTestFractal(t, 42)
	b := newTestFractal(t, 42)
	require.NoError(t, a.Generate())
	require.NoError(t, b.Generate())

	assert.Equal(t, a.Heightmap().Data(), b.Heightmap().Data())
}

func TestFractalNoiseSeedsDiffer(t *testing.T) {
	a := newTestFractal(t, 1)
	b := newTestFractal(t, 2)
	require.NoError(t, a.Generate())
	require.NoError(t, b.Generate())

	assert.NotEqual(t, a.Heightmap().Data(), b.Heightmap().Data())
}

func TestFractalNoiseNormalizedRange(t *testing.T) {
	gen := newTestFractal(t, 7)
	require.NoError(t, gen.Generate())

	hm := gen.Heightmap()
	assert.Equal(t, float32(0), hm.Min())
	assert.Equal(t, float32(1), hm.Max())
	assert.True(t, hm.Finite())
}

func TestFractalNoiseIslandFalloff(t *testing.T) {
	gen := newTestFractal(t, 99)
	require.NoError(t, gen.Generate())
	hm := gen.Heightmap()

	var border, borderN, centre, centreN float64
	width, height := hm.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			onBorder := x == 0 || y == 0 || x == width-1 || y == height-1
			inCentre := x >= width/2-8 && x < width/2+8 && y >= height/2-8 && y < height/2+8
			if onBorder {
				border += float64(hm.At(x, y))
				borderN++
			} else if inCentre {
				centre += float64(hm.At(x, y))
				centreN++
			}
		}
	}

	assert.Less(t, border/borderN, centre/centreN,
		"island edges should sit below the interior")
}

func TestFractalNoiseRejectsBadParams(t *testing.T) {
	cases := []struct {
		name                            string
		width, height, octaves          int
		frequency, persistence, falloff float64
	}{
		{"zero width", 0, 64, 4, 2, 0.5, 2},
		{"zero height", 64, 0, 4, 2, 0.5, 2},
		{"zero octaves", 64, 64, 0, 2, 0.5, 2},
		{"zero frequency", 64, 64, 4, 0, 0.5, 2},
		{"zero persistence", 64, 64, 4, 2, 0, 2},
		{"persistence above one", 64, 64, 4, 2, 1.5, 2},
		{"zero falloff", 64, 64, 4, 2, 0.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFractalNoise(tc.width, tc.height, 1, tc.octaves, tc.frequency, tc.persistence, tc.falloff)
			require.Error(t, err)
		})
	}
}
