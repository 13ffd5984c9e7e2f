package grid

import (
	"fmt"

	"github.com/y7ut/tiles/pkg/collection"
)

const (
	DefaultSizeX = 4
	DefaultSizeY = 4
)

// Options configure a new grid. Zero sizes fall back to the defaults.
type Options struct {
	SizeX    int
	SizeY    int
	CurrentX int
	CurrentY int
	Rand     Rand
}

// Tiles owns the matrix, its dimensions and the cursor.
// It is not safe for concurrent use: every interaction runs to completion before the next one.
type Tiles struct {
	matrix    Matrix
	sizeX     int
	sizeY     int
	cursor    Cursor
	rand      Rand
	listeners []Listener
}

// New validates the options and fills a fresh matrix with random values.
func New(opts Options) (*Tiles, error) {
	if opts.SizeX == 0 {
		opts.SizeX = DefaultSizeX
	}
	if opts.SizeY == 0 {
		opts.SizeY = DefaultSizeY
	}
	if opts.Rand == nil {
		opts.Rand = NewRand()
	}

	switch {
	case opts.SizeX < 0 || opts.SizeY < 0:
		return nil, fmt.Errorf("size %dx%d must be positive: %w", opts.SizeX, opts.SizeY, ErrInvalidConfig)
	case opts.CurrentX < 0 || opts.CurrentX >= opts.SizeX || opts.CurrentY < 0 || opts.CurrentY >= opts.SizeY:
		return nil, fmt.Errorf("cursor (%d,%d) outside of %dx%d: %w",
			opts.CurrentX, opts.CurrentY, opts.SizeX, opts.SizeY, ErrInvalidConfig)
	}

	m, err := Create(opts.SizeY, opts.SizeX, opts.Rand)
	if err != nil {
		return nil, err
	}

	return &Tiles{
		matrix: m,
		sizeX:  opts.SizeX,
		sizeY:  opts.SizeY,
		cursor: Cursor{X: opts.CurrentX, Y: opts.CurrentY},
		rand:   opts.Rand,
	}, nil
}

// Subscribe registers l for every following mutation.
func (t *Tiles) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

// Size returns the column and the row count.
func (t *Tiles) Size() (x, y int) {
	return t.sizeX, t.sizeY
}

func (t *Tiles) Cursor() Cursor {
	return t.cursor
}

// Matrix returns a copy of the current cells.
func (t *Tiles) Matrix() Matrix {
	return t.matrix.Clone()
}

// At returns the value of the cell in column x and row y.
func (t *Tiles) At(x, y int) (int, error) {
	if !t.inside(x, y) {
		return 0, fmt.Errorf("cell (%d,%d): %w", x, y, ErrOutOfRange)
	}
	return t.matrix[y][x], nil
}

func (t *Tiles) CanRemoveColumn() bool { return t.sizeX > 1 }

func (t *Tiles) CanRemoveRow() bool { return t.sizeY > 1 }

// Hover moves the cursor onto the cell in column x and row y.
func (t *Tiles) Hover(x, y int) error {
	if !t.inside(x, y) {
		return fmt.Errorf("hover (%d,%d): %w", x, y, ErrOutOfRange)
	}
	t.cursor = Cursor{X: x, Y: y}
	return nil
}

// Validate checks that the dimensions still describe the matrix.
func (t *Tiles) Validate() error {
	if t.matrix.Rows() != t.sizeY {
		return fmt.Errorf("matrix has %d rows, size says %d", t.matrix.Rows(), t.sizeY)
	}
	for i, row := range t.matrix {
		if len(row) != t.sizeX {
			return fmt.Errorf("row %d has %d cells, size says %d", i, len(row), t.sizeX)
		}
	}
	return nil
}

// RemoveColumn cuts column x out of every row.
// When the cursor sat on the last column it moves to the new last one.
func (t *Tiles) RemoveColumn(x int) (Event, error) {
	if x < 0 || x >= t.sizeX {
		return Event{}, fmt.Errorf("remove column %d of %d: %w", x, t.sizeX, ErrOutOfRange)
	}
	if !t.CanRemoveColumn() {
		return Event{}, fmt.Errorf("remove column %d: %w", x, ErrLastColumn)
	}

	for i := range t.matrix {
		t.matrix[i] = collection.RemoveAt(t.matrix[i], x)
	}
	t.sizeX = t.matrix.Cols()

	// the size shrank by exactly one, so a cursor on the old last column now equals sizeX
	if t.cursor.X == t.sizeX {
		t.cursor.X = t.sizeX - 1
	}

	return t.emit(Event{Action: RemoveColumn, Index: x, Exhausted: !t.CanRemoveColumn()}), nil
}

// RemoveRow cuts row y out of the matrix.
// When the cursor sat on the last row it moves to the new last one.
func (t *Tiles) RemoveRow(y int) (Event, error) {
	if y < 0 || y >= t.sizeY {
		return Event{}, fmt.Errorf("remove row %d of %d: %w", y, t.sizeY, ErrOutOfRange)
	}
	if !t.CanRemoveRow() {
		return Event{}, fmt.Errorf("remove row %d: %w", y, ErrLastRow)
	}

	t.matrix = collection.RemoveAt(t.matrix, y)
	t.sizeY = t.matrix.Rows()

	if t.cursor.Y == t.sizeY {
		t.cursor.Y = t.sizeY - 1
	}

	return t.emit(Event{Action: RemoveRow, Index: y, Exhausted: !t.CanRemoveRow()}), nil
}

// AddColumn appends one random value to every row.
func (t *Tiles) AddColumn() Event {
	cells := randomLine(t.sizeY, t.rand)
	for i := range t.matrix {
		t.matrix[i] = append(t.matrix[i], cells[i])
	}
	t.sizeX++

	return t.emit(Event{Action: AddColumn, Index: t.sizeX - 1, Cells: cells})
}

// AddRow appends a row of random values.
func (t *Tiles) AddRow() Event {
	cells := randomLine(t.sizeX, t.rand)
	t.matrix = append(t.matrix, collection.Clone(cells))
	t.sizeY++

	return t.emit(Event{Action: AddRow, Index: t.sizeY - 1, Cells: cells})
}

// Apply runs a on the grid, removals target the cursor.
func (t *Tiles) Apply(a Action) (Event, error) {
	switch a {
	case RemoveColumn:
		return t.RemoveColumn(t.cursor.X)
	case RemoveRow:
		return t.RemoveRow(t.cursor.Y)
	case AddColumn:
		return t.AddColumn(), nil
	case AddRow:
		return t.AddRow(), nil
	default:
		return Event{}, fmt.Errorf("apply %d: %w", a, ErrUnknownAction)
	}
}

// Do applies the action named by its symbolic name and reports whether the grid changed.
func (t *Tiles) Do(name string) bool {
	a, ok := ParseAction(name)
	if !ok {
		return false
	}
	_, err := t.Apply(a)
	return err == nil
}

func (t *Tiles) inside(x, y int) bool {
	return x >= 0 && x < t.sizeX && y >= 0 && y < t.sizeY
}

func (t *Tiles) emit(e Event) Event {
	e.SizeX, e.SizeY, e.Cursor = t.sizeX, t.sizeY, t.cursor
	for _, l := range t.listeners {
		l.Sync(e)
	}
	return e
}
