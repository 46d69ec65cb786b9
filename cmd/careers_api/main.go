// Package main provides the entry point for the careers HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careers_api",
	Short: "Careers HTTP API Server",
	Long:  "Careers API serves job postings with filtering and facets, accepts mock applications, and exposes an authenticated admin surface for managing postings via REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
