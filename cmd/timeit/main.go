package main

import (
	"os"

	"github.com/psantana5/timeit/cmd/timeit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
