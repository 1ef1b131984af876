package main

import (
	"fmt"
	"os"

	"github.com/harrison/assetkit/internal/cmd"
)

func main() {
	rootCmd := cmd.NewBarcodeCommand()

	// Callers read stdout, so even usage errors must end in the error token
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, cmd.ErrorToken)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
