package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/matrix"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDenseAccess(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	require.NoError(t, m.Add(1, 2, 0.5))
	require.NoError(t, m.Add(0, 0, -1))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 2, m.NonZero())
	assert.Equal(t, [][]float64{{-1, 0, 0}, {0, 0, 5}}, m.ToRows())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Add(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestToRowsIsACopy(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	rows := m.ToRows()
	rows[0][0] = 9
	v, _ := m.At(0, 0)
	assert.Zero(t, v)
}
