package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/landing-page-generator/internal/patterns"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List available page types and marketing angles",
	RunE:  runListCmd,
}

var (
	listPatternDir string
)

func init() {
	listCommand.Flags().StringVar(&listPatternDir, "patterns", "config", "Directory with pattern library sources")

	rootCmd.AddCommand(listCommand)
}

func runListCmd(_ *cobra.Command, _ []string) error {
	set := patterns.NewLoader(listPatternDir, "").Load()

	fmt.Println("Page types:")
	for _, id := range set.PageTypeIDs() {
		def := set.PageTypes[id]
		fmt.Printf("  %-20s %s", id, def.Name)
		if def.Description != "" {
			fmt.Printf(" (%s)", def.Description)
		}
		fmt.Println()
	}

	fmt.Println("\nAngles:")
	for _, id := range set.AngleIDs() {
		def := set.Angles[id]
		fmt.Printf("  %-20s %s", id, def.Name)
		if def.Description != "" {
			fmt.Printf(" (%s)", def.Description)
		}
		fmt.Println()
	}

	return nil
}
