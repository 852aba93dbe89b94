package main

import "github.com/katalvlaran/mazesolver/internal/cli"

func main() {
	cli.Execute()
}
