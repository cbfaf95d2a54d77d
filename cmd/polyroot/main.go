// Package main is the entry point for the polyroot CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/polyroot/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
