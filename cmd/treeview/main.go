package main

import (
	"fmt"
	"os"

	"github.com/harrison/assetkit/internal/cmd"
)

func main() {
	rootCmd := cmd.NewTreeCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
