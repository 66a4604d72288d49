package main

import (
	"os"

	"github.com/spigell/peer-interview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
