// Package main provides the entry point for the outfit-agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outfit_agent",
	Short: "Outfit recommendation CLI",
	Long:  "Outfit agent recommends clothing outfit combinations from a catalog, extracting requirements from free text, assembling candidates under category and seasonality constraints, and ranking them with a deterministic scoring model.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
