package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/y7ut/tiles/conf"
	"gopkg.in/ini.v1"
)

var InitConfigCommand = &cobra.Command{
	Use:   "config",
	Short: "A tool to generate configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		generateConfig(cmd, args)
	},
}

var createHelper bool

func generateConfig(cmd *cobra.Command, args []string) {
	cfg, err := ParseConfig(createHelper)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	confFile := cmd.Flag("file").Value.String()

	if err := cfg.SaveTo(confFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("Configuration file saved")
}

// ParseConfig builds a config file from the defaults, asking for the grid on stdin when helper is set.
func ParseConfig(helper bool) (*ini.File, error) {
	return parseConfig(helper, promptInput)
}

func parseConfig(helper bool, prompt func(string) string) (*ini.File, error) {
	c := conf.Default()

	if helper {
		fmt.Println("let's generate a config file for you: ")

		askInt(prompt, "1. Enter the column count (size_x): ", &c.Grid.SizeX)
		askInt(prompt, "2. Enter the row count (size_y): ", &c.Grid.SizeY)
		askInt(prompt, "3. Enter the cursor column (current_x): ", &c.Grid.CurrentX)
		askInt(prompt, "4. Enter the cursor row (current_y): ", &c.Grid.CurrentY)

		if logPath := strings.TrimSpace(prompt("5. Enter the log directory: ")); logPath != "" {
			c.Log.Path = logPath
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.File()
}

// askInt keeps the current value on an empty answer and asks again on garbage.
func askInt(prompt func(string) string, question string, target *int) {
	for {
		answer := strings.TrimSpace(prompt(question))
		if answer == "" {
			return
		}
		v, err := strconv.Atoi(answer)
		if err == nil {
			*target = v
			return
		}
		fmt.Printf("%q is not a number\n", answer)
	}
}

func init() {
	InitConfigCommand.Flags().StringP("file", "f", "tiles.conf", "output file name")
	InitConfigCommand.Flags().BoolVarP(&createHelper, "step", "s", false, "create with helper ")
	RootCmd.AddCommand(InitConfigCommand)
}

// promptInput reads one answer from stdin
func promptInput(prompt string) string {
	fmt.Print(prompt)
	var input string
	fmt.Scanln(&input)
	return input
}
