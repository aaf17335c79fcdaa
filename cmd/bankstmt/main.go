package main

import (
	"os"

	"github.com/bankstmt-dev/bankstmt/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
