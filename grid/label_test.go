package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLabelGrid_Validation mirrors the Grid construction contract.
func TestNewLabelGrid_Validation(t *testing.T) {
	_, err := NewLabelGrid(0, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewLabelGrid(5, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	lg, err := NewLabelGrid(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, lg.Size())
	assert.Zero(t, lg.At(1, 2))

	assert.Panics(t, func() { lg.At(2, 0) })
	assert.Panics(t, func() { lg.Set(0, 3, 1) })
}

// TestCountLabels_DistinctPositives counts distinct positive values only.
func TestCountLabels_DistinctPositives(t *testing.T) {
	lg, err := NewLabelGrid(3, 2)
	require.NoError(t, err)
	assert.Zero(t, lg.CountLabels())

	lg.Set(0, 0, 1)
	lg.Set(0, 1, 1)
	lg.Set(1, 2, 7) // gaps are allowed: count is of distinct values, not the max
	assert.Equal(t, 2, lg.CountLabels())
	assert.Equal(t, int32(7), lg.MaxLabel())
}

// TestToVisualization_Mapping pins value = label*254/max + 1 with
// background fixed at 0.
func TestToVisualization_Mapping(t *testing.T) {
	lg, err := NewLabelGrid(4, 1)
	require.NoError(t, err)
	lg.Set(0, 0, 0)
	lg.Set(0, 1, 1)
	lg.Set(0, 2, 2)
	lg.Set(0, 3, 4)

	viz := lg.ToVisualization()
	assert.Equal(t, uint8(0), viz.At(0, 0))                // background
	assert.Equal(t, uint8(1*254/4+1), viz.At(0, 1))        // 64
	assert.Equal(t, uint8(2*254/4+1), viz.At(0, 2))        // 128
	assert.Equal(t, uint8(255), viz.At(0, 3))              // max label maps to 255
	assert.Equal(t, lg.Width, viz.Width)
	assert.Equal(t, lg.Height, viz.Height)
}

// TestToVisualization_AllBackground returns an all-zero grid without
// dividing by the absent maximum.
func TestToVisualization_AllBackground(t *testing.T) {
	lg, err := NewLabelGrid(2, 2)
	require.NoError(t, err)
	viz := lg.ToVisualization()
	for _, v := range viz.Data() {
		assert.Zero(t, v)
	}
}

// TestToVisualization_PreservesMembership: cells share a visualization value
// iff they share a label (for label counts below the 8-bit range), so the
// remap is purely cosmetic with respect to component membership.
func TestToVisualization_PreservesMembership(t *testing.T) {
	lg, err := NewLabelGrid(3, 3)
	require.NoError(t, err)
	lg.Set(0, 0, 1)
	lg.Set(0, 1, 1)
	lg.Set(1, 1, 2)
	lg.Set(2, 2, 3)

	viz := lg.ToVisualization()
	assert.Equal(t, viz.At(0, 0), viz.At(0, 1))
	assert.NotEqual(t, viz.At(0, 0), viz.At(1, 1))
	assert.NotEqual(t, viz.At(1, 1), viz.At(2, 2))
	assert.NotEqual(t, viz.At(0, 0), viz.At(2, 2))
}
