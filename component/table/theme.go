package table

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors a Theme is built from.
type Palette struct {
	Border     string
	Header     string
	SelectedFg string
	SelectedBg string
	Arrow      string
}

// DefaultPalette matches the original green frame.
func DefaultPalette() Palette {
	return Palette{
		Border:     "#6EAF23",
		Header:     "240",
		SelectedFg: "229",
		SelectedBg: "57",
		Arrow:      "#6EAF23",
	}
}

// Theme is the style handle handed to the table at construction.
type Theme struct {
	Frame  lipgloss.Style
	Table  table.Styles
	Arrow  lipgloss.Style
	Board  lipgloss.Style
	Marker [2]string
}

func NewTheme(p Palette) Theme {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.Header)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(p.SelectedFg)).
		Background(lipgloss.Color(p.SelectedBg)).
		Bold(false)

	return Theme{
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.Border)),
		Table:  s,
		Arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Arrow)).Bold(true),
		Board:  lipgloss.NewStyle().Faint(true),
		Marker: [2]string{"[", "]"},
	}
}

func (t Theme) mark(value string) string {
	return t.Marker[0] + value + t.Marker[1]
}
