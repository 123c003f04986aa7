// Package skills provides skill token canonicalization, categorization, and
// the oracle-with-fallback extraction pipeline.
package skills

import (
	"regexp"
	"sort"
	"strings"
)

// skillNormalizations maps variant spellings to a canonical spelling.
// Keys must be lowercase. Identity entries (wi-fi) guard already-canonical
// tokens from being torn apart by shorter overlapping keys.
var skillNormalizations = map[string]string{
	"react.js":         "react",
	"reactjs":          "react",
	"node js":          "node.js",
	"nodejs":           "node.js",
	"powerbi":          "power bi",
	"u boot":           "u-boot",
	"device-tree":      "device tree",
	"embedded c":       "c",
	"c plus plus":      "c++",
	"cplusplus":        "c++",
	"usb 3 0":          "usb 3.0",
	"usb3.0":           "usb 3.0",
	"wi fi":            "wi-fi",
	"wi-fi":            "wi-fi",
	"i 2 c":            "i2c",
	"i 2 s":            "i2s",
	"yocto project":    "yocto",
	"petalinux sdk":    "petalinux",
	"system verilog":   "systemverilog",
	"microcontrollers": "microcontroller",
	"msp430ware":       "msp430",
}

// substitutionKeys holds the normalization keys sorted longest-first so the
// single-pass scan always prefers the most specific variant. Ties break
// lexicographically to keep the pass deterministic.
var substitutionKeys = func() []string {
	keys := make([]string, 0, len(skillNormalizations))
	for k := range skillNormalizations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var (
	underscoreTabPattern = regexp.MustCompile(`[_\t]+`)
	slashPattern         = regexp.MustCompile(`\s*[/\\]+\s*`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	usbRepairPattern     = regexp.MustCompile(`\busb\s+([0-9])\s+0\b`)
)

// Normalize reduces a raw skill token to its canonical lowercase form.
// The step order is part of the contract, and the function is idempotent:
// Normalize(Normalize(x)) == Normalize(x) for any input.
func Normalize(token string) string {
	// 1. Trim and lowercase.
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return ""
	}

	// 2. Collapse underscores and tabs to spaces.
	s = underscoreTabPattern.ReplaceAllString(s, " ")

	// 3. Normalize slash-separated variants, strip commas, collapse runs.
	s = slashPattern.ReplaceAllString(s, " / ")
	s = strings.ReplaceAll(s, ",", " ")
	s = whitespacePattern.ReplaceAllString(s, " ")

	// 4. Variant substitutions, longest key first, left-to-right passes
	//    repeated until the string is stable.
	s = applySubstitutions(s)

	// 5. Drop stray periods; version numbers like "3.0" survive.
	s = stripStrayPeriods(s)

	// 6. Repair multi-token numeric sequences ("usb 3 0" -> "usb 3.0").
	s = usbRepairPattern.ReplaceAllString(s, "usb $1.0")

	// 7. Final collapse and trim.
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// applySubstitutions rewrites variant spellings until the string is stable.
// Within a pass emitted replacement text is never rescanned, so overlapping
// rules cannot corrupt already-substituted text the way iterative replacement
// over an unordered map would. A replacement can still join with neighbouring
// input to spell another rule key ("embedded c plus plus" emits "c" and leaves
// " plus plus"), so the pass repeats until nothing changes. Every map value is
// itself free of rule keys, so the loop terminates.
func applySubstitutions(s string) string {
	for {
		next := substitutionPass(s)
		if next == s {
			return next
		}
		s = next
	}
}

func substitutionPass(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		matched := false
		for _, key := range substitutionKeys {
			if strings.HasPrefix(s[i:], key) {
				b.WriteString(skillNormalizations[key])
				i += len(key)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}

	return b.String()
}

// stripStrayPeriods replaces any period not adjacent to a digit with a space,
// so "usb 3.0" keeps its version dot while sentence punctuation is dropped.
func stripStrayPeriods(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range runes {
		if r == '.' {
			prevDigit := i > 0 && runes[i-1] >= '0' && runes[i-1] <= '9'
			nextDigit := i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9'
			if !prevDigit && !nextDigit {
				b.WriteRune(' ')
				continue
			}
		}
		b.WriteRune(r)
	}

	return b.String()
}
