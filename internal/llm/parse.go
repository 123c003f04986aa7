package llm

import (
	"encoding/json"
	"regexp"
)

// ExtractJSONObject locates the first syntactically balanced JSON object in
// text and returns it. The scan tracks brace depth and is string-literal and
// escape aware, so an object followed by trailing commentary is extracted
// cleanly where a greedy first-{-to-last-} match would capture garbage.
func ExtractJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					candidate := text[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					// Unbalanced-looking garbage before the real object;
					// restart the scan after this candidate.
					start = -1
				}
			}
		}
	}

	return "", false
}

var quotedStringPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"|'([^']*)'`)

// ExtractStringArray is the best-effort rescue for the skills schema: it
// scans text for the first balanced bracketed list and collects its quoted
// string elements. Used only when no balanced JSON object is found.
func ExtractStringArray(text string) ([]string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	end := -1

scan:
	for i, r := range text {
		if start == -1 {
			if r == '[' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					end = i
					break scan
				}
			}
		}
	}

	if start == -1 || end == -1 {
		return nil, false
	}

	segment := text[start : end+1]

	// Prefer strict decoding when the segment is a valid JSON array.
	var decoded []any
	if err := json.Unmarshal([]byte(segment), &decoded); err == nil {
		items := make([]string, 0, len(decoded))
		for _, v := range decoded {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
		if len(items) > 0 {
			return items, true
		}
		return nil, false
	}

	// Otherwise pull out whatever quoted strings the list contains.
	matches := quotedStringPattern.FindAllStringSubmatch(segment, -1)
	items := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			items = append(items, m[1])
		} else if m[2] != "" {
			items = append(items, m[2])
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}
