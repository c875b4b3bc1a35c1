package main

import (
	"os"

	"github.com/iw2rmb/listedit/cmd/listedit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
