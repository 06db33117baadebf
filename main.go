package main

import "github.com/planrun-cli/planrun/cmd"

func main() {
	cmd.Execute()
}
