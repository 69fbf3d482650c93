package generators

import (
	"math/rand"

	"islandsim/terrain"
	"islandsim/utils"
)

// MidpointDisplacement is an alternative generator producing ridged fractal
// terrain by recursive corner averaging with seeded jitter. It carries no
// island falloff; the fractal noise generator is the default.
type MidpointDisplacement struct {
	width, height  int
	seed           int64
	spread, reduce float32
	heightmap      *terrain.HeightMap
}

func NewMidPointDisplacement(width, height int, seed int64, spread, reduce float32) (*MidpointDisplacement, error) {
	heightmap, err := terrain.NewHeightMap(width, height)
	if err != nil {
		return nil, err
	}
	return &MidpointDisplacement{
		width:     width,
		height:    height,
		seed:      seed,
		spread:    spread,
		reduce:    reduce,
		heightmap: heightmap,
	}, nil
}

func (m *MidpointDisplacement) Heightmap() *terrain.HeightMap {
	return m.heightmap
}

func (m *MidpointDisplacement) Dimensions() (int, int) {
	return m.width, m.height
}

func (m *MidpointDisplacement) Generate() error {
	var rng = rand.New(rand.NewSource(m.seed))
	for i := range m.heightmap.Data() {
		m.heightmap.Data()[i] = 0
	}

	// Set all four corners to random values
	var right = m.width - 1
	var bottom = m.height - 1
	m.heightmap.Set(0, 0, rng.Float32())
	m.heightmap.Set(right, 0, rng.Float32())
	m.heightmap.Set(0, bottom, rng.Float32())
	m.heightmap.Set(right, bottom, rng.Float32())
	m.displace(rng, 0, 0, right, bottom, m.spread)
	m.heightmap.Normalize()
	return nil
}

func (m *MidpointDisplacement) displace(rng *rand.Rand, x0, y0, x1, y1 int, spread float32) {
	if x1-x0 <= 1 && y1-y0 <= 1 {
		return
	}
	var xMid = utils.Midpoint(x0, x1)
	var yMid = utils.Midpoint(y0, y1)

	m.setIfUnset(rng, xMid, y0, spread, m.heightmap.At(x0, y0), m.heightmap.At(x1, y0))
	m.setIfUnset(rng, x0, yMid, spread, m.heightmap.At(x0, y0), m.heightmap.At(x0, y1))
	m.setIfUnset(rng, x1, yMid, spread, m.heightmap.At(x1, y0), m.heightmap.At(x1, y1))
	m.setIfUnset(rng, xMid, y1, spread, m.heightmap.At(x0, y1), m.heightmap.At(x1, y1))
	m.setIfUnset(rng, xMid, yMid, spread,
		m.heightmap.At(xMid, y0), m.heightmap.At(x0, yMid),
		m.heightmap.At(x1, yMid), m.heightmap.At(xMid, y1))

	var next = spread * m.reduce
	m.displace(rng, x0, y0, xMid, yMid, next)
	m.displace(rng, xMid, y0, x1, yMid, next)
	m.displace(rng, x0, yMid, xMid, y1, next)
	m.displace(rng, xMid, yMid, x1, y1, next)
}

func (m *MidpointDisplacement) setIfUnset(rng *rand.Rand, x, y int, spread float32, corners ...float32) {
	if m.heightmap.At(x, y) != 0 {
		return
	}
	var avg = utils.Average(corners...)
	m.heightmap.Set(x, y, utils.Jitter(rng, avg, spread))
}

var _ TerrainGenerator = (*MidpointDisplacement)(nil)
