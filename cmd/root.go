package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "./tiles ",
	Short: "An interactive grid of numbers you can grow and shrink",
	Long: `
  _   _ _
 | |_(_) |___ ___
 |  _| | / -_|_-<
  \__|_|_\___/__/
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
