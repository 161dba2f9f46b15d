package main

import (
	"os"

	"phonebook/cmd/phonebook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
