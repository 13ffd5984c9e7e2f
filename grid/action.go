package grid

// Action is one of the four grid mutations. The set is closed.
type Action int

const (
	RemoveColumn Action = iota + 1
	RemoveRow
	AddColumn
	AddRow
)

var actionNames = map[Action]string{
	RemoveColumn: "remove-column",
	RemoveRow:    "remove-row",
	AddColumn:    "add-column",
	AddRow:       "add-row",
}

// Actions lists the closed action set in a stable order.
func Actions() []Action {
	return []Action{RemoveColumn, RemoveRow, AddColumn, AddRow}
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether a belongs to the action set.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseAction maps a symbolic name such as "add-row" to its Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}
