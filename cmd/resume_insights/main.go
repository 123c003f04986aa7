// Package main provides the entry point for the resume insights CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insights",
	Short: "Extract experience and categorized skills from resumes",
	Long:  "Resume Insights extracts total professional experience and a categorized skill set from PDF, DOCX, or plain-text resumes, using Gemini with deterministic local fallbacks.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
