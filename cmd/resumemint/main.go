// Package main provides the entry point for the ResumeMint server and tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumemint",
	Short: "ResumeMint resume builder",
	Long:  "ResumeMint builds styled resumes from structured drafts: serve the HTTP API backing the editor, or export saved drafts to PDF from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
