package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-insights/internal/experience"
	"github.com/jonathan/resume-insights/internal/ingestion"
	"github.com/jonathan/resume-insights/internal/skills"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>...",
	Short: "Extract experience and skills from one or more resumes",
	Long:  "Extract total professional experience and the categorized skill set from each resume. Multiple resumes are processed concurrently; each is independent of the others.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// analysis is the per-resume result gathered by the concurrent workers.
type analysis struct {
	path     string
	duration experience.Duration
	skillSet skills.Report
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	results := make([]analysis, len(args))

	// Resumes are independent: no shared mutable state, so the batch runs
	// concurrently with a bounded worker count.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			text, err := ingestion.ExtractText(path)
			if err != nil {
				return err
			}
			results[i] = analysis{
				path:     path,
				duration: a.resolver.Resolve(gctx, text),
				skillSet: a.extractor.Extract(gctx, text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		if len(args) > 1 {
			fmt.Fprintf(os.Stdout, "%s\n", result.path)
		}
		a.printer.PrintExperience(result.duration)
		a.printer.PrintSkills(result.skillSet)
	}

	return nil
}
