package grid

import "fmt"

// Cursor is the last hovered cell, X is the column and Y the row.
type Cursor struct {
	X int
	Y int
}

// Event describes one applied mutation so a view can update itself incrementally.
type Event struct {
	Action Action
	// Index is the removed index, or the index of the appended row/column.
	Index int
	// Cells holds the new values of an added column (one per row) or row (one per column).
	Cells  []int
	SizeX  int
	SizeY  int
	Cursor Cursor
	// Exhausted is set once the affected dimension is down to 1 and can not shrink further.
	Exhausted bool
}

func (e Event) String() string {
	return fmt.Sprintf("%s index=%d size=%dx%d cursor=(%d,%d) exhausted=%t",
		e.Action, e.Index, e.SizeX, e.SizeY, e.Cursor.X, e.Cursor.Y, e.Exhausted)
}

// Listener receives every applied mutation.
type Listener interface {
	Sync(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) Sync(e Event) { f(e) }
