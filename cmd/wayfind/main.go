package main

import (
	"os"

	"github.com/avolkov/wayfind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
