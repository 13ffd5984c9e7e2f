package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/y7ut/tiles/app"
	"github.com/y7ut/tiles/conf"
	"github.com/y7ut/tiles/pkg/file"
)

var RunCommand = &cobra.Command{
	Use:   "run [--config config]",
	Short: "Open the tiles grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

// checkconfig writes a default config file when path does not exist yet.
func checkconfig(path string) error {
	exist, err := file.PathExists(path)
	if err != nil || exist {
		return err
	}

	fmt.Println("🧸 config not found")
	cfg, err := ParseConfig(false)
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Println("Configuration file saved")
	return nil
}

// loadConfig reads the config file and lets the grid flags override it.
func loadConfig(cmd *cobra.Command) (*conf.TilesConf, error) {
	configPath := cmd.Flag("config").Value.String()
	if err := checkconfig(configPath); err != nil {
		return nil, err
	}

	c, err := conf.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := map[string]*int{
		"size-x":    &c.Grid.SizeX,
		"size-y":    &c.Grid.SizeY,
		"current-x": &c.Grid.CurrentX,
		"current-y": &c.Grid.CurrentY,
	}
	for name, target := range flags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			v, err := cmd.Flags().GetInt(name)
			if err != nil {
				return nil, err
			}
			*target = v
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func run(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closer, err := app.Init(c.Log.Path, c.Log.Name)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	tiles, err := app.New(c, nil)
	if err != nil {
		return err
	}
	return tiles.Run()
}

func init() {
	RunCommand.Flags().StringP("config", "c", "./tiles.conf", "config tiles file")
	RunCommand.Flags().IntP("size-x", "x", 0, "column count, overrides the config file")
	RunCommand.Flags().IntP("size-y", "y", 0, "row count, overrides the config file")
	RunCommand.Flags().Int("current-x", 0, "initial cursor column")
	RunCommand.Flags().Int("current-y", 0, "initial cursor row")
	RootCmd.AddCommand(RunCommand)
}
