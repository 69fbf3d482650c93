package export

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandsim/terrain"
)

func testGrid(t *testing.T) *terrain.HeightMap {
	t.Helper()
	hm, err := terrain.NewHeightMap(8, 4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			hm.Set(x, y, float32(x)/7)
		}
	}
	return hm
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, testGrid(t)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	gray, ok := img.(*image.Gray16)
	require.True(t, ok)
	assert.Equal(t, uint16(0), gray.Gray16At(0, 0).Y, "minimum elevation renders black")
	assert.Equal(t, uint16(0xffff), gray.Gray16At(7, 0).Y, "maximum elevation renders white")
}

func TestWriteRawLayout(t *testing.T) {
	var buf bytes.Buffer
	hm := testGrid(t)
	require.NoError(t, WriteRaw(&buf, hm))

	require.Equal(t, 8+4*8*4, buf.Len())

	var width, height uint32
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &width))
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &height))
	assert.Equal(t, uint32(8), width)
	assert.Equal(t, uint32(4), height)

	values := make([]float32, width*height)
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, values))
	assert.Equal(t, hm.Data(), values)
}

func TestExportRejectsNonFiniteGrids(t *testing.T) {
	hm := testGrid(t)
	hm.Set(1, 1, float32(math.NaN()))

	var buf bytes.Buffer
	require.Error(t, WritePNG(&buf, hm))
	require.Error(t, WriteRaw(&buf, hm))
}
