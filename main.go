package main

import (
	"os"

	"github.com/abhisek/hatchery/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
