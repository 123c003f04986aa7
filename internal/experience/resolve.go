// Package experience resolves total professional experience from resume text,
// preferring the oracle's structured answer and degrading to the local
// duration heuristic when the oracle cannot deliver one.
package experience

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/jonathan/resume-insights/internal/fallback"
	"github.com/jonathan/resume-insights/internal/llm"
)

// RoundingMode selects how the fractional year remainder becomes months.
type RoundingMode string

const (
	// RoundNearest rounds the month remainder to the nearest whole month
	RoundNearest RoundingMode = "round"
	// RoundFloor truncates the month remainder
	RoundFloor RoundingMode = "floor"
)

// Duration is the resolved experience result: a non-negative decimal year
// count (one decimal digit) and its human-readable rendering.
type Duration struct {
	DecimalYears float64
	Human        string
}

// Resolver orchestrates the oracle and the fallback heuristic.
type Resolver struct {
	oracle *llm.Oracle
	mode   RoundingMode
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger disables event logging.
func NewResolver(oracle *llm.Oracle, mode RoundingMode, logger *slog.Logger) *Resolver {
	if mode == "" {
		mode = RoundNearest
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{oracle: oracle, mode: mode, logger: logger}
}

// Resolve returns the total experience for the given resume text. Every
// oracle failure is absorbed: the heuristic answer is returned instead and
// the degradation is logged as a non-fatal event.
func (r *Resolver) Resolve(ctx context.Context, text string) Duration {
	years, err := r.oracle.AskTotalYears(ctx, text)
	if err != nil {
		r.logger.Warn("experience oracle failed, using fallback",
			"error", err)
		years = fallback.Years(text)
	}
	if years < 0 {
		years = 0
	}
	years = math.Round(years*10) / 10

	return Duration{
		DecimalYears: years,
		Human:        HumanDuration(years, r.mode),
	}
}

// HumanDuration renders a decimal year count as years and months. The year
// part is the truncated integer; months come from the fractional remainder
// under the given rounding mode. A remainder that rounds to 12 months carries
// into a full year with zero leftover months.
func HumanDuration(decimalYears float64, mode RoundingMode) string {
	if decimalYears < 0 {
		decimalYears = 0
	}

	years := int(decimalYears)
	remainder := (decimalYears - float64(years)) * 12

	var months int
	if mode == RoundFloor {
		months = int(remainder)
	} else {
		months = int(math.Round(remainder))
	}
	if months >= 12 {
		years++
		months = 0
	}

	switch {
	case years == 0 && months == 0:
		return "0 years"
	case months == 0:
		return fmt.Sprintf("%d years", years)
	case years == 0:
		return fmt.Sprintf("%d months", months)
	default:
		return fmt.Sprintf("%d years %d months", years, months)
	}
}
