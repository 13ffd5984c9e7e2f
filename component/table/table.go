package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/y7ut/tiles/grid"
)

// layout of View(): one line for the top arrow, the frame border, then the two header lines
const (
	gutterWidth = 2
	rowsTop     = 1 + 1 + 2
	cellsLeft   = gutterWidth + 1
	cellFrame   = 2 // cell padding on both sides
)

const (
	arrowTop    = "▲"
	arrowLeft   = "◀"
	arrowRight  = "▶"
	arrowBottom = "▼"
)

// TilesTable is the bubbletea model of the tiles widget.
type TilesTable struct {
	tiles    *grid.Tiles
	view     *View
	theme    Theme
	keyMap   keyMap
	table    table.Model
	help     help.Model
	columns  []table.Column
	hovering bool
	board    string
}

// Create builds the widget on top of tiles and subscribes its view to the mutations.
func Create(tiles *grid.Tiles, theme Theme) TilesTable {
	view := NewView(tiles.Matrix())
	tiles.Subscribe(view)

	t := table.New(table.WithFocused(true))
	t.SetStyles(theme.Table)

	m := TilesTable{
		tiles:    tiles,
		view:     view,
		theme:    theme,
		keyMap:   DefaultTableKeyMap(),
		table:    t,
		help:     help.New(),
		hovering: true,
	}
	m.refresh()
	return m
}

func (m TilesTable) Init() tea.Cmd { return nil }

func (m TilesTable) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if msg.Type != tea.MouseMotion || !m.table.Focused() {
			return m, nil
		}
		x, y, ok := cellAt(m.columns, len(m.view.rows), msg.X, msg.Y)
		m.hovering = ok
		if ok {
			m.hover(x, y)
		}
		m.syncArrows()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keyMap.Focus):
			if m.table.Focused() {
				m.table.Blur()
			} else {
				m.table.Focus()
			}
		}
		if !m.table.Focused() {
			return m, nil
		}
		c := m.tiles.Cursor()
		switch {
		case key.Matches(msg, m.keyMap.Up):
			m.hover(c.X, c.Y-1)
		case key.Matches(msg, m.keyMap.Down):
			m.hover(c.X, c.Y+1)
		case key.Matches(msg, m.keyMap.Left):
			m.hover(c.X-1, c.Y)
		case key.Matches(msg, m.keyMap.Right):
			m.hover(c.X+1, c.Y)
		case key.Matches(msg, m.keyMap.RemoveColumn):
			m.apply(grid.RemoveColumn)
		case key.Matches(msg, m.keyMap.RemoveRow):
			m.apply(grid.RemoveRow)
		case key.Matches(msg, m.keyMap.AddColumn):
			m.apply(grid.AddColumn)
		case key.Matches(msg, m.keyMap.AddRow):
			m.apply(grid.AddRow)
		}
	}
	return m, nil
}

// hover moves the cursor; moves off the grid are ignored.
func (m *TilesTable) hover(x, y int) {
	if err := m.tiles.Hover(x, y); err != nil {
		return
	}
	m.hovering = true
	m.refresh()
}

func (m *TilesTable) apply(a grid.Action) {
	e, err := m.tiles.Apply(a)
	if err != nil {
		m.board = err.Error()
		return
	}
	m.board = e.String()
	m.refresh()
}

// arrowVisible tells whether the control of a is shown.
// The removal arrows follow the pointer and vanish once their dimension is down to one.
func (m TilesTable) arrowVisible(a grid.Action) bool {
	switch a {
	case grid.RemoveColumn:
		return m.hovering && m.tiles.CanRemoveColumn()
	case grid.RemoveRow:
		return m.hovering && m.tiles.CanRemoveRow()
	case grid.AddColumn, grid.AddRow:
		return true
	}
	return false
}

// refresh hands the synced rows to the bubbles table with the cursor cell marked.
func (m *TilesTable) refresh() {
	columns, rows := m.view.Render()
	c := m.tiles.Cursor()
	if c.Y < len(rows) && c.X < len(rows[c.Y]) {
		rows[c.Y][c.X] = m.theme.mark(rows[c.Y][c.X])
	}

	// clear the rows first, a row wider than the columns can not be drawn
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows))
	m.table.SetCursor(c.Y)
	m.columns = columns
	m.syncArrows()
}

// syncArrows disables the key of every hidden arrow, which also drops it from the help line.
func (m *TilesTable) syncArrows() {
	m.keyMap.RemoveColumn.SetEnabled(m.arrowVisible(grid.RemoveColumn))
	m.keyMap.RemoveRow.SetEnabled(m.arrowVisible(grid.RemoveRow))
}

// cellAt maps a terminal position onto a grid cell.
func cellAt(columns []table.Column, rows, px, py int) (x, y int, ok bool) {
	y = py - rowsTop
	if y < 0 || y >= rows {
		return 0, 0, false
	}
	left := cellsLeft
	for x, col := range columns {
		right := left + col.Width + cellFrame
		if px >= left && px < right {
			return x, y, true
		}
		left = right
	}
	return 0, 0, false
}

// columnCenter is the terminal column in the middle of grid column x.
func columnCenter(columns []table.Column, x int) int {
	left := cellsLeft
	for i := 0; i < x && i < len(columns); i++ {
		left += columns[i].Width + cellFrame
	}
	if x < len(columns) {
		left += (columns[x].Width + cellFrame) / 2
	}
	return left
}

func (m TilesTable) arrow(a grid.Action, glyph string) string {
	if !m.arrowVisible(a) {
		return " "
	}
	return m.theme.Arrow.Render(glyph)
}

// gutter is a column beside the frame holding glyph on the cursor row.
func (m TilesTable) gutter(height int, glyph string) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", gutterWidth)
	}
	if row := rowsTop - 1 + m.tiles.Cursor().Y; row < height {
		lines[row] = lipgloss.PlaceHorizontal(gutterWidth, lipgloss.Center, glyph)
	}
	return strings.Join(lines, "\n")
}

func (m TilesTable) View() string {
	c := m.tiles.Cursor()
	indent := strings.Repeat(" ", columnCenter(m.columns, c.X))

	frame := m.theme.Frame.Render(m.table.View())
	height := lipgloss.Height(frame)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.gutter(height, m.arrow(grid.RemoveRow, arrowLeft)),
		frame,
		m.gutter(height, m.arrow(grid.AddColumn, arrowRight)),
	)

	sizeX, sizeY := m.tiles.Size()
	value, _ := m.tiles.At(c.X, c.Y)
	status := fmt.Sprintf("%d×%d  cursor (%d,%d) = %d", sizeX, sizeY, c.X, c.Y, value)
	if m.board != "" {
		status += "  " + m.board
	}

	return indent + m.arrow(grid.RemoveColumn, arrowTop) + "\n" +
		body + "\n" +
		indent + m.arrow(grid.AddRow, arrowBottom) + "\n" +
		m.theme.Board.Render(status) + "\n" +
		m.help.View(m.keyMap) + "\n"
}

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	RemoveColumn key.Binding
	RemoveRow    key.Binding
	AddColumn    key.Binding
	AddRow       key.Binding
	Quit         key.Binding
	Help         key.Binding
	Focus        key.Binding
}

// DefaultTableKeyMap binds the four arrow controls to shifted directions.
func DefaultTableKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		RemoveColumn: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp(arrowTop+"/K", "remove column"),
		),
		RemoveRow: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp(arrowLeft+"/H", "remove row"),
		),
		AddColumn: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp(arrowRight+"/L", "add column"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp(arrowBottom+"/J", "add row"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "lock"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RemoveColumn, k.RemoveRow, k.AddColumn, k.AddRow, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.RemoveColumn, k.RemoveRow},
		{k.AddColumn, k.AddRow},
		{k.Quit, k.Focus, k.Help},
	}
}
