package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ShapeAndRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			m, err := Create(rows, cols, r)
			require.NoError(t, err)
			require.Equal(t, rows, m.Rows())
			require.Equal(t, cols, m.Cols())
			require.True(t, m.Rectangular())
			for _, row := range m {
				require.Len(t, row, cols)
				for _, v := range row {
					assert.GreaterOrEqual(t, v, 1)
					assert.LessOrEqual(t, v, 10)
				}
			}
		}
	}
}

func TestCreate_BadShape(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {3, -2}} {
		_, err := Create(shape[0], shape[1], r)
		require.ErrorIs(t, err, ErrBadShape, "shape %v", shape)
	}
}

func TestCreate_CoversValueRange(t *testing.T) {
	m, err := Create(20, 20, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, row := range m {
		for _, v := range row {
			seen[v] = true
		}
	}
	for v := 1; v <= 10; v++ {
		assert.True(t, seen[v], "value %d never produced", v)
	}
}

func TestMatrix_CloneIsDeep(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 9
	assert.Equal(t, 1, m[0][0])
	assert.Equal(t, m.Rows(), c.Rows())
}

func TestMatrix_Rectangular(t *testing.T) {
	assert.True(t, Matrix{{1, 2}, {3, 4}}.Rectangular())
	assert.False(t, Matrix{{1, 2}, {3}}.Rectangular())
	assert.Equal(t, 0, Matrix{}.Cols())
}
