package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidpointDisplacementDeterministic(t *testing.T) {
	a, err := NewMidPointDisplacement(65, 65, 1234, 0.5, 0.5)
	require.NoError(t, err)
	b, err := NewMidPointDisplacement(65, 65, 1234, 0.5, 0.5)
	require.NoError(t, err)

	require.NoError(t, a.Generate())
	require.NoError(t, b.Generate())

	assert.Equal(t, a.Heightmap().Data(), b.Heightmap().Data())
}

func TestMidpointDisplacementNormalizedRange(t *testing.T) {
	gen, err := NewMidPointDisplacement(64, 64, 5, 0.5, 0.5)
	require.NoError(t, err)
	require.NoError(t, gen.Generate())

	hm := gen.Heightmap()
	assert.Equal(t, float32(0), hm.Min())
	assert.Equal(t, float32(1), hm.Max())
	assert.True(t, hm.Finite())
}

func TestMidpointDisplacementRejectsDegenerateDimensions(t *testing.T) {
	_, err := NewMidPointDisplacement(0, 64, 1, 0.5, 0.5)
	require.Error(t, err)
	_, err = NewMidPointDisplacement(64, -1, 1, 0.5, 0.5)
	require.Error(t, err)
}
