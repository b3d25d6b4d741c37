package main

import (
	"os"

	"github.com/discord-pagination/pagination-go/cmd/pagebot/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
