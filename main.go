package main

import "portfolio/internal/cli"

func main() {
	cli.Execute()
}
