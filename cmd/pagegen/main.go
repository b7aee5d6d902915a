// Package main provides the entry point for the landing page generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pagegen",
	Short: "Landing page copy generator",
	Long:  "pagegen creates high-converting landing page copy by combining a curated pattern library with a product configuration and a two-pass LLM generation protocol.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
