package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "Bare object",
			input:    `{"total_years": 5.5}`,
			expected: `{"total_years": 5.5}`,
			found:    true,
		},
		{
			name:     "Object with trailing prose",
			input:    `{"total_years": 5.5} Hope that helps! Let me know if {anything} else.`,
			expected: `{"total_years": 5.5}`,
			found:    true,
		},
		{
			name:     "Object with leading prose",
			input:    `Sure, here is the JSON: {"skills": ["go"]}`,
			expected: `{"skills": ["go"]}`,
			found:    true,
		},
		{
			name:     "Nested objects",
			input:    `{"outer": {"inner": 1}, "n": 2} trailing`,
			expected: `{"outer": {"inner": 1}, "n": 2}`,
			found:    true,
		},
		{
			name:     "Braces inside strings",
			input:    `{"note": "curly } brace { inside"} done`,
			expected: `{"note": "curly } brace { inside"}`,
			found:    true,
		},
		{
			name:     "Escaped quotes inside strings",
			input:    `{"note": "a \"quoted\" value"} tail`,
			expected: `{"note": "a \"quoted\" value"}`,
			found:    true,
		},
		{
			name:     "Invalid candidate then valid object",
			input:    `{not json} {"total_years": 3.0}`,
			expected: `{"total_years": 3.0}`,
			found:    true,
		},
		{
			name:  "No object at all",
			input: `just some prose without structure`,
			found: false,
		},
		{
			name:  "Unbalanced object",
			input: `{"total_years": 5.5`,
			found: false,
		},
		{
			name:  "Empty input",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := ExtractJSONObject(tt.input)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, obj)
			}
		})
	}
}

func TestExtractStringArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		found    bool
	}{
		{
			name:     "Valid JSON array",
			input:    `["python", "docker", "i2c"]`,
			expected: []string{"python", "docker", "i2c"},
			found:    true,
		},
		{
			name:     "Array with surrounding prose",
			input:    `The skills are: ["go", "rust"] as requested.`,
			expected: []string{"go", "rust"},
			found:    true,
		},
		{
			name:     "Non-string elements dropped",
			input:    `["python", 42, "docker"]`,
			expected: []string{"python", "docker"},
			found:    true,
		},
		{
			name:     "Loose single-quoted list",
			input:    `['python', 'docker']`,
			expected: []string{"python", "docker"},
			found:    true,
		},
		{
			name:  "No array",
			input: "nothing bracketed here",
			found: false,
		},
		{
			name:  "Array without strings",
			input: `[1, 2, 3]`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ok := ExtractStringArray(tt.input)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, items)
			}
		})
	}
}
