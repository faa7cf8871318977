// Package main provides the entry point for the contest board CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contest_board",
	Short: "ERICA contest board",
	Long:  "Contest board aggregates university contest postings, classifies them by deadline, and serves them as a REST API, CLI views, and an iCalendar feed.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
