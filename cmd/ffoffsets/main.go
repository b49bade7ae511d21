package main

import "offsets-finder/internal/cli"

func main() {
	cli.Execute()
}
