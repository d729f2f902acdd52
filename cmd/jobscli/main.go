// Package main provides the jobscli entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscli",
	Short: "itjobs.pt listings with Teamlyzer company enrichment",
	Long: "jobscli queries the itjobs.pt job-listing API and augments postings with " +
		"company metadata scraped from Teamlyzer: ratings, descriptions, benefits, " +
		"salary bands and per-role skill demand.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
