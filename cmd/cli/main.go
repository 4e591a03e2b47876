// Package main is the entry point for the unitconv CLI.
package main

import (
	"os"

	"unitconv/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
