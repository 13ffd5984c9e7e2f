package table

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y7ut/tiles/grid"
)

func newGrid(t *testing.T, sizeX, sizeY int) *grid.Tiles {
	t.Helper()
	tiles, err := grid.New(grid.Options{SizeX: sizeX, SizeY: sizeY, Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, err)
	return tiles
}

func requireMirrors(t *testing.T, v *View, m grid.Matrix) {
	t.Helper()
	_, rows := v.Render()
	require.Len(t, rows, len(m))
	for i, line := range m {
		require.Len(t, rows[i], len(line))
		for k, value := range line {
			require.Equal(t, strconv.Itoa(value), rows[i][k], "cell (%d,%d)", k, i)
		}
	}
}

func TestView_FollowsMutations(t *testing.T) {
	tiles := newGrid(t, 3, 3)
	v := NewView(tiles.Matrix())
	tiles.Subscribe(v)
	requireMirrors(t, v, tiles.Matrix())

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		x, y := tiles.Size()
		require.NoError(t, tiles.Hover(r.Intn(x), r.Intn(y)))
		_, _ = tiles.Apply(grid.Actions()[r.Intn(4)])
		requireMirrors(t, v, tiles.Matrix())
	}
}

func TestView_SyncInsertsAtIndex(t *testing.T) {
	v := NewView(grid.Matrix{{1, 2}, {3, 4}})

	v.Sync(grid.Event{Action: grid.AddColumn, Index: 1, Cells: []int{7, 8}})
	v.Sync(grid.Event{Action: grid.AddRow, Index: 0, Cells: []int{5, 6, 9}})

	_, rows := v.Render()
	assert.Equal(t, []table.Row{{"5", "6", "9"}, {"1", "7", "2"}, {"3", "8", "4"}}, rows)

	v.Sync(grid.Event{Action: grid.RemoveRow, Index: 1})
	v.Sync(grid.Event{Action: grid.RemoveColumn, Index: 0})
	_, rows = v.Render()
	assert.Equal(t, []table.Row{{"6", "9"}, {"8", "4"}}, rows)
}

func TestView_RenderWidths(t *testing.T) {
	v := NewView(grid.Matrix{{10, 1}, {2, 3}})
	columns, rows := v.Render()

	require.Len(t, columns, 2)
	assert.Equal(t, table.Column{Title: "0", Width: 2 + cellPadding}, columns[0])
	assert.Equal(t, table.Column{Title: "1", Width: 1 + cellPadding}, columns[1])

	// rows are copies
	rows[0][0] = "x"
	_, again := v.Render()
	assert.Equal(t, "10", again[0][0])
}

func TestView_Size(t *testing.T) {
	x, y := NewView(grid.Matrix{{1, 2, 3}}).Size()
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	x, y = (&View{}).Size()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
