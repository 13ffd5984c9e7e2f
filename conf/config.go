package conf

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

// ErrInvalidConfig marks values that parse but can not describe a grid.
var ErrInvalidConfig = errors.New("conf: invalid configuration")

type TilesConf struct {
	Grid  `ini:"grid"`
	Style `ini:"style"`
	Log   `ini:"log"`
}

// 网格初始尺寸和光标
type Grid struct {
	SizeX    int `ini:"size_x"`
	SizeY    int `ini:"size_y"`
	CurrentX int `ini:"current_x"`
	CurrentY int `ini:"current_y"`
}

// 颜色
type Style struct {
	Border     string `ini:"border"`
	Header     string `ini:"header"`
	SelectedFg string `ini:"selected_fg"`
	SelectedBg string `ini:"selected_bg"`
	Arrow      string `ini:"arrow"`
}

// 日志
type Log struct {
	Path string `ini:"path"`
	Name string `ini:"name"`
}

// Default is the configuration used for every key missing from the file.
func Default() *TilesConf {
	return &TilesConf{
		Grid: Grid{SizeX: 4, SizeY: 4},
		Style: Style{
			Border:     "76",
			Header:     "240",
			SelectedFg: "229",
			SelectedBg: "57",
			Arrow:      "76",
		},
		Log: Log{Path: "./runtime/log", Name: "tiles.log"},
	}
}

// Load reads an ini file on top of the defaults.
// Numbers that do not parse and values outside the grid are reported as ErrInvalidConfig.
func Load(path string) (*TilesConf, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load ini file %s: %w", path, err)
	}

	c := Default()
	if err := f.StrictMapTo(c); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *TilesConf) Validate() error {
	g := c.Grid
	switch {
	case g.SizeX <= 0 || g.SizeY <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, g.SizeX, g.SizeY)
	case g.CurrentX < 0 || g.CurrentX >= g.SizeX:
		return fmt.Errorf("%w: current_x %d outside [0,%d)", ErrInvalidConfig, g.CurrentX, g.SizeX)
	case g.CurrentY < 0 || g.CurrentY >= g.SizeY:
		return fmt.Errorf("%w: current_y %d outside [0,%d)", ErrInvalidConfig, g.CurrentY, g.SizeY)
	case c.Log.Name == "":
		return fmt.Errorf("%w: log name is empty", ErrInvalidConfig)
	}
	return nil
}

// File turns the configuration back into an ini document.
func (c *TilesConf) File() (*ini.File, error) {
	cfg := ini.Empty()
	if err := ini.ReflectFrom(cfg, c); err != nil {
		return nil, err
	}
	cfg.Section("grid").Comment = "Initial grid size and cursor"
	cfg.Section("style").Comment = "Colors, hex or ANSI codes"
	cfg.Section("log").Comment = "Mutation journal"
	return cfg, nil
}
