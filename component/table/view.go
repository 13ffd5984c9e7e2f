package table

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/y7ut/tiles/grid"
	"github.com/y7ut/tiles/pkg/collection"
)

// 列宽在最长内容的基础上留出的空位, room for the cursor marker
const cellPadding = 3

var _ Grid = (*View)(nil)
var _ grid.Listener = (*View)(nil)

// View keeps the rendered rows of a grid in step with its mutations.
// After construction it only ever changes through Sync, one row or column at a time.
type View struct {
	rows []table.Row
}

// NewView renders the initial matrix once.
func NewView(m grid.Matrix) *View {
	return &View{
		rows: collection.Map(m, func(_ int, line []int) table.Row {
			return collection.Map(line, cellText)
		}),
	}
}

func cellText(_ int, v int) string {
	return strconv.Itoa(v)
}

// Sync applies a single mutation event.
func (v *View) Sync(e grid.Event) {
	switch e.Action {
	case grid.RemoveColumn:
		for i := range v.rows {
			v.rows[i] = collection.RemoveAt(v.rows[i], e.Index)
		}
	case grid.RemoveRow:
		v.rows = collection.RemoveAt(v.rows, e.Index)
	case grid.AddColumn:
		for i := range v.rows {
			if i < len(e.Cells) {
				v.rows[i] = collection.InsertAt(v.rows[i], e.Index, cellText(i, e.Cells[i]))
			}
		}
	case grid.AddRow:
		v.rows = collection.InsertAt(v.rows, e.Index, table.Row(collection.Map(e.Cells, cellText)))
	}
}

// Size returns the rendered column and row count.
func (v *View) Size() (x, y int) {
	if len(v.rows) == 0 {
		return 0, 0
	}
	return len(v.rows[0]), len(v.rows)
}

// Render copies the rows and sizes every column after its widest value.
func (v *View) Render() (columns []table.Column, rows []table.Row) {
	sizeX, _ := v.Size()
	maxLen := make([]int, sizeX)

	rows = collection.Map(v.rows, func(_ int, row table.Row) table.Row {
		for k, item := range row {
			if len(item) > maxLen[k] {
				maxLen[k] = len(item)
			}
		}
		return collection.Clone(row)
	})

	columns = collection.Fill(sizeX, func(k int) table.Column {
		title := strconv.Itoa(k)
		if len(title) > maxLen[k] {
			maxLen[k] = len(title)
		}
		return table.Column{Title: title, Width: maxLen[k] + cellPadding}
	})
	return
}
