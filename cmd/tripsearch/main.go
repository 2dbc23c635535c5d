package main

import (
	"tripsearch/internal/command"
)

var version = "dev"

func main() {
	command.Main(
		"tripsearch", version, "Search travel listings from the terminal",
		command.Search(),
		command.Interactive(),
	)
}
