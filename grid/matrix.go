package grid

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/y7ut/tiles/pkg/collection"
)

const (
	minValue = 1
	maxValue = 10
)

// Rand is the source of cell values.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a source seeded from the clock.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Matrix 矩阵, rows of cells
type Matrix [][]int

// Create produces a rows×cols matrix of independent values in [1,10].
func Create(rows, cols int, r Rand) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("create %dx%d: %w", rows, cols, ErrBadShape)
	}
	return collection.Fill(rows, func(int) []int {
		return randomLine(cols, r)
	}), nil
}

func randomValue(r Rand) int {
	return r.Intn(maxValue-minValue+1) + minValue
}

func randomLine(n int, r Rand) []int {
	return collection.Fill(n, func(int) int { return randomValue(r) })
}

// Rows is the row count.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols is the column count, taken from the first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone deep copies the matrix.
func (m Matrix) Clone() Matrix {
	return collection.Map(m, func(_ int, row []int) []int {
		return collection.Clone(row)
	})
}

// Rectangular reports whether every row has the length of the first one.
func (m Matrix) Rectangular() bool {
	cols := m.Cols()
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}
