// Package main provides the entry point for the LearnFast schedule API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnfast",
	Short: "LearnFast study schedule generator",
	Long:  "LearnFast turns a YouTube playlist into a day-by-day study schedule, tracks per-video progress, and regenerates plans without losing completed work.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
