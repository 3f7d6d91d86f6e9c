package main

import "github.com/mcoot/connect4-solver/internal/cli"

func main() {
	cli.Execute()
}
