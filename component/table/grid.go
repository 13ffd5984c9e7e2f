package table

import (
	"github.com/charmbracelet/bubbles/table"
)

// Grid is anything that can be drawn by a bubbles table.
type Grid interface {
	Render() ([]table.Column, []table.Row)
}
