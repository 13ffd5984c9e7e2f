package app

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/y7ut/tiles/component/table"
	"github.com/y7ut/tiles/conf"
	"github.com/y7ut/tiles/grid"
)

type App struct {
	Tiles *grid.Tiles
	model table.TilesTable
}

// New builds the grid from c and wires the journal and the table view to it.
// A nil r seeds values from the clock.
func New(c *conf.TilesConf, r grid.Rand) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tiles, err := grid.New(grid.Options{
		SizeX:    c.Grid.SizeX,
		SizeY:    c.Grid.SizeY,
		CurrentX: c.Grid.CurrentX,
		CurrentY: c.Grid.CurrentY,
		Rand:     r,
	})
	if err != nil {
		return nil, fmt.Errorf("create tiles: %w", err)
	}
	tiles.Subscribe(NewJournal(nil))

	theme := table.NewTheme(table.Palette{
		Border:     c.Style.Border,
		Header:     c.Style.Header,
		SelectedFg: c.Style.SelectedFg,
		SelectedBg: c.Style.SelectedBg,
		Arrow:      c.Style.Arrow,
	})

	return &App{Tiles: tiles, model: table.Create(tiles, theme)}, nil
}

// Run blocks until the user quits the widget.
func (app *App) Run() error {
	sizeX, sizeY := app.Tiles.Size()
	log.Printf("start tiles %dx%d", sizeX, sizeY)

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tiles: %w", err)
	}

	log.Println("tiles closed")
	return nil
}
