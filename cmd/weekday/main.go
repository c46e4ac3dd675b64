package main

import (
	"os"

	"github.com/diegoclair/weekday-api/cmd/weekday/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
