package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-insights/internal/experience"
	"github.com/jonathan/resume-insights/internal/skills"
	"github.com/stretchr/testify/assert"
)

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExperience(experience.Duration{
		DecimalYears: 4.5,
		Human:        "4 years 6 months",
	})

	out := buf.String()
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "Decimal years: 4.5")
	assert.Contains(t, out, "4 years 6 months")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkills(skills.Report{
		All: []string{"python", "docker", "i2c"},
		ByCategory: map[skills.Category][]string{
			skills.CategoryLanguages: {"python"},
			skills.CategoryTools:     {"docker"},
			skills.CategoryProtocols: {"i2c"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Skills found: 3")
	assert.Contains(t, out, "LANGUAGES (1)")
	assert.Contains(t, out, "- python")
	assert.Contains(t, out, "TOOLS (1)")
	assert.Contains(t, out, "PROTOCOLS (1)")
	// Empty categories are listed too.
	assert.Contains(t, out, "PLATFORMS (0)")
	assert.Contains(t, out, "DRIVERS (0)")
	assert.Contains(t, out, "OTHER (0)")
	assert.Contains(t, out, "(none)")
}
