package main

import "github.com/y7ut/tiles/cmd"

func main() {
	cmd.Execute()
}
