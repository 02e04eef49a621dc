// Package main is the entry point for the texttuner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/texttuner/texttuner/cmd"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "Warning:", stopErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
