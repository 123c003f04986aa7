package skills

import (
	"context"
	"io"
	"log/slog"

	"github.com/jonathan/resume-insights/internal/fallback"
	"github.com/jonathan/resume-insights/internal/llm"
)

// Report is the categorized extraction result. All holds every surviving
// canonical token in first-seen order; ByCategory groups the same tokens,
// preserving within-category insertion order.
type Report struct {
	All        []string
	ByCategory map[Category][]string
}

// Extractor orchestrates the skills pipeline: oracle, fallback,
// canonicalization, dedup, and categorization.
type Extractor struct {
	oracle *llm.Oracle
	logger *slog.Logger
}

// NewExtractor creates an Extractor. A nil logger disables event logging.
func NewExtractor(oracle *llm.Oracle, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{oracle: oracle, logger: logger}
}

// Extract returns the deduplicated, categorized skill set for resume text.
// When the oracle yields no usable payload the static keyword scan supplies
// the raw tokens instead, and the degradation is logged as a non-fatal event.
func (e *Extractor) Extract(ctx context.Context, text string) Report {
	values, err := e.oracle.AskSkills(ctx, text)
	if err != nil {
		e.logger.Warn("skills oracle failed, using fallback",
			"error", err)
		found := fallback.Skills(text)
		values = make([]any, len(found))
		for i, s := range found {
			values[i] = s
		}
	}

	return Categorized(values)
}

// Categorized runs the deterministic tail of the pipeline over raw payload
// values. Non-string elements are discarded silently; tokens that normalize
// to empty are dropped; the first occurrence of each canonical form wins.
func Categorized(values []any) Report {
	report := Report{ByCategory: make(map[Category][]string, len(Categories))}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		token := Normalize(raw)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true

		report.All = append(report.All, token)
		cat := Categorize(token)
		report.ByCategory[cat] = append(report.ByCategory[cat], token)
	}

	return report
}
