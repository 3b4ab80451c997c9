// Package main provides the entry point for the brand_agent CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brand_agent",
	Short: "Brand Compliance Audit Engine",
	Long:  "brand_agent extracts rules from brand guideline documents, synthesizes canonical brand kits, and audits visual assets for palette, color-usage, and copy compliance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
