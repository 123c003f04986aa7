package main

import (
	"context"

	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:   "experience <resume>",
	Short: "Extract total professional experience from a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperience,
}

func init() {
	rootCmd.AddCommand(experienceCmd)
}

func runExperience(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	a.printer.PrintExperience(a.resolver.Resolve(ctx, text))
	return nil
}
