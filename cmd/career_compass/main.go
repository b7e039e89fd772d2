// Package main provides the entry point for the Career Compass HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Career Compass HTTP API Server",
	Long:  "Career Compass analyzes a candidate's resume and coding stats, discovers matching job postings, and produces skill-gap reports and company-fit comparisons via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
