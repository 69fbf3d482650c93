// Package generators produces initial heightmaps for the erosion simulation.
package generators

import (
	"islandsim/terrain"
)

// TerrainGenerator is implemented by every heightmap producer. Generate
// populates the grid from scratch; calling it again with the same generator
// state yields the same terrain.
type TerrainGenerator interface {
	Generate() error
	Heightmap() *terrain.HeightMap
	Dimensions() (int, int)
}
