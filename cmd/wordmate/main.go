// Package main is the entry point for the wordmate CLI.
package main

import (
	"os"

	"github.com/heartmarshall/wordmate-backend/cmd/wordmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
