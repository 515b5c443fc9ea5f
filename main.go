// main.go
//
// Entry point; CLI wiring lives in cli.go

package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
