package export

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"islandsim/terrain"
)

// WriteRaw dumps the heightmap in a simple binary layout: width and height
// as little-endian uint32, then the row-major float32 elevations. Intended
// for 3D viewers that triangulate the grid themselves.
func WriteRaw(w io.Writer, heightmap *terrain.HeightMap) error {
	if !heightmap.Finite() {
		return fmt.Errorf("export: heightmap contains non-finite values")
	}
	var width, height = heightmap.Dimensions()
	if err := binary.Write(w, binary.LittleEndian, uint32(width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(height)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, heightmap.Data())
}

// SaveRaw writes the raw heightmap dump to a file.
func SaveRaw(path string, heightmap *terrain.HeightMap) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer file.Close()
	return WriteRaw(file, heightmap)
}
