package erosion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFlowAccumulatesFractionalFlux(t *testing.T) {
	source := NewSource(mgl32.Vec2{4, 4}, 0.3)

	var total int
	for tick := 0; tick < 10; tick++ {
		drops := source.Flow()
		assert.LessOrEqual(t, drops, 1)
		total += drops
	}
	assert.Equal(t, 3, total)
}

func TestSourceFlowWholeFlux(t *testing.T) {
	source := NewSource(mgl32.Vec2{0, 0}, 2)
	assert.Equal(t, 2, source.Flow())
	assert.Equal(t, 2, source.Flow())
}

func TestPlaceSourcesRespectsMinElevation(t *testing.T) {
	var state = testState()
	hm := rampGrid(t, 64, 16, 64)

	eroder, err := NewEroder(hm, &state, 13)
	require.NoError(t, err)

	sources := eroder.PlaceSources(50, 0.5, 0.8)
	assert.LessOrEqual(t, len(sources), 50)
	assert.NotEmpty(t, sources, "a full-width ramp has plenty of high ground")
	for _, source := range sources {
		assert.Greater(t, hm.Sample(source.Pos.X(), source.Pos.Y()), float32(0.8))
	}
}

func TestSimulateSourcesRunsEveryDueDroplet(t *testing.T) {
	var state = testState()
	hm := rampGrid(t, 64, 16, 64)

	eroder, err := NewEroder(hm, &state, 2)
	require.NoError(t, err)

	sources := []*Source{
		NewSource(mgl32.Vec2{2, 4}, 1),
		NewSource(mgl32.Vec2{2, 12}, 1),
	}
	require.NoError(t, eroder.SimulateSources(sources, 5))

	assert.Equal(t, 10, eroder.Iterations())
	assert.Greater(t, eroder.TotalEroded(), 0.0)
}

func TestSimulateSourcesAbortable(t *testing.T) {
	var state = testState()
	hm := rampGrid(t, 32, 32, 32)

	eroder, err := NewEroder(hm, &state, 2)
	require.NoError(t, err)
	eroder.Abort()

	sources := []*Source{NewSource(mgl32.Vec2{1, 1}, 1)}
	require.ErrorIs(t, eroder.SimulateSources(sources, 3), ErrAborted)
}
