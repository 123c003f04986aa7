// Package fallback provides the deterministic local heuristics used when the
// oracle is unavailable or returns an unusable payload. Both functions are
// pure: same text in, same answer out.
package fallback

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var yearsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\b`)

// Years scans text for duration mentions like "5 years", "3+ yrs", "2.5
// years" and returns the maximum value found, rounded to one decimal digit.
// Returns 0.0 when no duration is mentioned.
func Years(text string) float64 {
	if text == "" {
		return 0.0
	}

	max := 0.0
	found := false
	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
			found = true
		}
	}
	if !found {
		return 0.0
	}
	return math.Round(max*10) / 10
}

// Keywords is the static skill dictionary scanned by Skills. Order matters:
// matches are reported in dictionary order.
var Keywords = []string{
	// languages
	"c", "c++", "c#", "python", "java", "javascript", "typescript", "go",
	"rust", "ruby", "php", "scala", "kotlin", "swift", "r",
	// frontend
	"react", "angular", "vue", "next.js", "svelte", "html", "css", "sass",
	"tailwind",
	// backend frameworks
	"node.js", "express", "django", "flask", "spring boot", "spring",
	"laravel", "asp.net",
	// databases
	"sql", "postgresql", "mysql", "mongodb", "redis", "oracle", "mssql",
	"cassandra",
	// cloud and infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"helm",
	// ci/cd
	"jenkins", "github actions", "gitlab-ci", "circleci",
	// ml and data
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "xgboost",
	"lightgbm", "nlp", "opencv", "spacy",
	// data engineering
	"spark", "hadoop", "etl", "airflow",
	// embedded platforms
	"embedded linux", "yocto", "petalinux", "u-boot", "device tree", "kernel",
	"linux kernel", "bsp", "arm", "raspberry pi", "stm32", "nxp", "imx",
	"qualcomm",
	// buses and protocols
	"i2c", "spi", "uart", "gpio", "pcie", "usb", "ethernet", "can", "i2s",
	// drivers and bring-up
	"board bring-up", "firmware", "bootloader", "driver development",
	"kernel drivers", "device drivers",
	// tools
	"git", "gdb", "cmake", "make", "gcc", "clang", "vivado", "quartus", "jtag",
	// misc
	"linux", "bash", "shell", "systemd", "sysvinit", "excel", "tableau",
	"power bi", "docker-compose",
}

// keywordPatterns precompiles a whole-word matcher per dictionary entry.
var keywordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(Keywords))
	for i, kw := range Keywords {
		patterns[i] = wordPattern(kw)
	}
	return patterns
}()

// Skills performs a whole-word, case-insensitive scan of the keyword
// dictionary against text, returning matches in dictionary order.
func Skills(text string) []string {
	if text == "" {
		return nil
	}
	low := strings.ToLower(text)

	var found []string
	for i, pattern := range keywordPatterns {
		if pattern.MatchString(low) {
			found = append(found, Keywords[i])
		}
	}
	return found
}

// wordPattern builds a whole-word matcher for a keyword. \b only works
// between word and non-word runes, so keywords with non-word edges (c++, c#,
// .net suffixes) get explicit boundary classes instead.
func wordPattern(kw string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(kw))

	left := `\b`
	if !isWordByte(kw[0]) {
		left = `(?:^|[^\w+#.])`
	}
	right := `\b`
	if !isWordByte(kw[len(kw)-1]) {
		right = `(?:$|[^\w+#.])`
	}

	return regexp.MustCompile(left + quoted + right)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
