// Package main is the entry point for the doclens CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the doclens CLI.
var rootCmd = &cobra.Command{
	Use:   "doclens",
	Short: "Rule-based document analysis service",
	Long: `doclens analyzes documents for structure, readability, tone, and
consistency without calling any external model. It extracts sections,
scores transitions between them, runs consistency checks, generates
extractive summaries, and applies dictionary-based tone rewrites.

Run "doclens serve" to start the HTTP API, or "doclens analyze" to
inspect a single file from the command line.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
