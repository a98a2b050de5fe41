// Package main provides the entry point for the kisi-kisi generator CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kisi_agent",
	Short: "AI exam blueprint generator",
	Long:  "kisi_agent generates exam blueprints (kisi-kisi), student worksheets, and answer keys with Gemini, and exports them as printable pages and spreadsheet workbooks.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
