// Package observability provides formatted output utilities for the CLI
// report.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insights/internal/experience"
	"github.com/jonathan/resume-insights/internal/skills"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExperience outputs the resolved experience duration.
func (p *Printer) PrintExperience(dur experience.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decimal years: %.1f\n", dur.DecimalYears))
	sb.WriteString(fmt.Sprintf("Total:         %s", dur.Human))
	p.printBox("EXPERIENCE", sb.String())
}

// PrintSkills outputs the categorized skill listing. Every category is
// listed, empty ones included, in the fixed report order.
func (p *Printer) PrintSkills(report skills.Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(report.All)))

	for _, cat := range skills.Categories {
		items := report.ByCategory[cat]
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", strings.ToUpper(string(cat)), len(items)))
		if len(items) == 0 {
			sb.WriteString("  - (none)\n")
			continue
		}
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
