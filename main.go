package main

import (
	"os"

	"github.com/arvindh/recallo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
