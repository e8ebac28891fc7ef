package main

import (
	"os"

	"github.com/soocke/roomview-go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
