// Package export writes finished heightmaps for downstream visualization.
// It is the boundary of the simulation: grids must arrive fully finite, and
// nothing here feeds back into generation or erosion.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"islandsim/terrain"
)

// WritePNG renders the heightmap as a 16-bit grayscale PNG, darkest at the
// grid's minimum elevation and white at its maximum.
func WritePNG(w io.Writer, heightmap *terrain.HeightMap) error {
	if !heightmap.Finite() {
		return fmt.Errorf("export: heightmap contains non-finite values")
	}
	var width, height = heightmap.Dimensions()
	var min = heightmap.Min()
	var diff = heightmap.Max() - min
	if diff == 0 {
		diff = 1
	}

	var img = image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var shade = (heightmap.At(x, y) - min) / diff
			var i = img.PixOffset(x, y)
			var v = uint16(shade * 0xffff)
			img.Pix[i] = uint8(v >> 8)
			img.Pix[i+1] = uint8(v)
		}
	}
	return png.Encode(w, img)
}

// SavePNG writes the heightmap PNG to a file.
func SavePNG(path string, heightmap *terrain.HeightMap) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer file.Close()
	return WritePNG(file, heightmap)
}
