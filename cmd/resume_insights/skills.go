package main

import (
	"context"

	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills <resume>",
	Short: "Extract the categorized skill set from a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
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

	a.printer.PrintSkills(a.extractor.Extract(ctx, text))
	return nil
}
