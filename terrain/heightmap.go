// Package terrain holds the dense elevation field shared by the generators
// and the erosion simulation. All continuous-coordinate operations clamp to
// grid bounds and touch only the 2x2 cell neighbourhood around the query
// point.
package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"islandsim/utils"
)

// HeightMap is a row-major grid of float32 elevations. It is allocated once
// and mutated in place; ownership passes from the generator to the eroder to
// the exporter, never shared for concurrent writes.
type HeightMap struct {
	width, height int
	data          []float32
	floor         float32
}

func NewHeightMap(width, height int) (*HeightMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terrain: invalid dimensions %dx%d", width, height)
	}
	return &HeightMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}, nil
}

func (h *HeightMap) Dimensions() (int, int) {
	return h.width, h.height
}

// Data exposes the backing slice, row-major, for bulk fills and export.
func (h *HeightMap) Data() []float32 {
	return h.data
}

func (h *HeightMap) At(x, y int) float32 {
	return h.data[utils.ToIndex(x, y, h.width)]
}

func (h *HeightMap) Set(x, y int, value float32) {
	h.data[utils.ToIndex(x, y, h.width)] = value
}

// Floor is the lowest elevation Erode may leave in any cell.
func (h *HeightMap) Floor() float32 {
	return h.floor
}

func (h *HeightMap) SetFloor(floor float32) {
	h.floor = floor
}

// corners resolves a continuous point to its four surrounding cell indices
// and the fractional interpolation weights. Coordinates outside the grid are
// clamped rather than rejected so simulation near boundaries degrades
// gracefully.
func (h *HeightMap) corners(x, y float32) (i00, i10, i01, i11 int, fx, fy float32) {
	var cx = utils.Clamp(x, 0, float32(h.width-1))
	var cy = utils.Clamp(y, 0, float32(h.height-1))
	var x0 = utils.ClampInt(int(cx), 0, max(h.width-2, 0))
	var y0 = utils.ClampInt(int(cy), 0, max(h.height-2, 0))
	var x1 = utils.ClampInt(x0+1, 0, h.width-1)
	var y1 = utils.ClampInt(y0+1, 0, h.height-1)
	fx = cx - float32(x0)
	fy = cy - float32(y0)
	i00 = utils.ToIndex(x0, y0, h.width)
	i10 = utils.ToIndex(x1, y0, h.width)
	i01 = utils.ToIndex(x0, y1, h.width)
	i11 = utils.ToIndex(x1, y1, h.width)
	return
}

// Sample bilinearly interpolates the elevation at a continuous point.
func (h *HeightMap) Sample(x, y float32) float32 {
	var i00, i10, i01, i11, fx, fy = h.corners(x, y)
	var top = utils.Lerp(h.data[i00], h.data[i10], fx)
	var bottom = utils.Lerp(h.data[i01], h.data[i11], fx)
	return utils.Lerp(top, bottom, fy)
}

// Gradient estimates the partial derivatives at a continuous point from the
// same four corners Sample reads, so flow direction and erosion always agree.
func (h *HeightMap) Gradient(x, y float32) mgl32.Vec2 {
	var i00, i10, i01, i11, fx, fy = h.corners(x, y)
	var dx = (h.data[i10]-h.data[i00])*(1-fy) + (h.data[i11]-h.data[i01])*fy
	var dy = (h.data[i01]-h.data[i00])*(1-fx) + (h.data[i11]-h.data[i10])*fx
	return mgl32.Vec2{dx, dy}
}

// Deposit spreads amount across the four cells surrounding the point,
// weighted by the bilinear interpolation weights, so mass added at a
// continuous point is conserved on the integer lattice.
func (h *HeightMap) Deposit(x, y, amount float32) {
	var i00, i10, i01, i11, fx, fy = h.corners(x, y)
	h.data[i00] += amount * (1 - fx) * (1 - fy)
	h.data[i10] += amount * fx * (1 - fy)
	h.data[i01] += amount * (1 - fx) * fy
	h.data[i11] += amount * fx * fy
}

// Erode removes up to amount, bilinearly weighted, without driving any cell
// below the floor. It returns the mass actually removed; the shortfall when
// a cell bottoms out is discarded, an accepted approximation.
func (h *HeightMap) Erode(x, y, amount float32) float32 {
	var i00, i10, i01, i11, fx, fy = h.corners(x, y)
	var total float32
	total += h.erodeCell(i00, amount*(1-fx)*(1-fy))
	total += h.erodeCell(i10, amount*fx*(1-fy))
	total += h.erodeCell(i01, amount*(1-fx)*fy)
	total += h.erodeCell(i11, amount*fx*fy)
	return total
}

func (h *HeightMap) erodeCell(i int, want float32) float32 {
	var allowed = h.data[i] - h.floor
	if allowed <= 0 {
		return 0
	}
	if want > allowed {
		want = allowed
	}
	h.data[i] -= want
	return want
}

// Min returns the lowest elevation in the grid.
func (h *HeightMap) Min() float32 {
	var min = float32(math.Inf(1))
	for _, v := range h.data {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the highest elevation in the grid.
func (h *HeightMap) Max() float32 {
	var max = float32(math.Inf(-1))
	for _, v := range h.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Normalize rescales all elevations into [0, 1]. A perfectly flat grid maps
// to all zeros.
func (h *HeightMap) Normalize() {
	var min = h.Min()
	var diff = h.Max() - min
	if diff == 0 {
		for i := range h.data {
			h.data[i] = 0
		}
		return
	}
	for i := range h.data {
		h.data[i] = (h.data[i] - min) / diff
	}
}

// Clone returns an independent copy with the same dimensions and floor.
func (h *HeightMap) Clone() *HeightMap {
	var data = make([]float32, len(h.data))
	copy(data, h.data)
	return &HeightMap{
		width:  h.width,
		height: h.height,
		data:   data,
		floor:  h.floor,
	}
}

// CopyFrom overwrites this grid's cells with those of other. Dimensions must
// match; the grid is never resized.
func (h *HeightMap) CopyFrom(other *HeightMap) error {
	if h.width != other.width || h.height != other.height {
		return fmt.Errorf("terrain: dimension mismatch %dx%d vs %dx%d",
			h.width, h.height, other.width, other.height)
	}
	copy(h.data, other.data)
	h.floor = other.floor
	return nil
}

// Finite reports whether every cell holds a finite value.
func (h *HeightMap) Finite() bool {
	for _, v := range h.data {
		var f = float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
