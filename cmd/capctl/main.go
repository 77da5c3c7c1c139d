// ABOUTME: Entry point for capctl CLI
// ABOUTME: Command-line tool for spot capacity simulation

package main

import (
	"fmt"
	"os"

	"github.com/matan-gr/capacity-advisor1/cmd/capctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
