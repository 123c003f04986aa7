package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

// OracleConfig bounds the oracle protocol: input truncation, request timeout,
// and the retry/backoff policy for transport failures.
type OracleConfig struct {
	MaxInputChars int           // Character budget for resume text in prompts
	MaxRetries    int           // Retries after the first attempt, transport errors only
	BackoffBase   time.Duration // Backoff grows linearly per attempt
	BackoffCap    time.Duration // Upper bound on a single backoff sleep
	Timeout       time.Duration // Per-request timeout
}

// DefaultOracleConfig returns the default protocol bounds
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		MaxInputChars: 15000,
		MaxRetries:    2,
		BackoffBase:   600 * time.Millisecond,
		BackoffCap:    3 * time.Second,
		Timeout:       30 * time.Second,
	}
}

// Oracle asks the LLM for structured answers and isolates all transport and
// parse failure handling behind typed errors. Callers never see a raw error:
// every failure is either *UnavailableError or *MalformedResponseError.
type Oracle struct {
	client Client
	cfg    OracleConfig

	sleep func(time.Duration)
	now   func() time.Time
}

// NewOracle creates an Oracle over the given client
func NewOracle(client Client, cfg OracleConfig) *Oracle {
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultOracleConfig().MaxInputChars
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultOracleConfig().Timeout
	}
	return &Oracle{
		client: client,
		cfg:    cfg,
		sleep:  time.Sleep,
		now:    time.Now,
	}
}

// AskTotalYears asks the oracle for total professional experience and returns
// a non-negative decimal year count rounded to one decimal digit.
func (o *Oracle) AskTotalYears(ctx context.Context, text string) (float64, error) {
	prompt := o.buildYearsPrompt(text)

	raw, err := o.generate(ctx, prompt)
	if err != nil {
		return 0, err
	}

	raw = CleanJSONBlock(raw)
	obj, ok := ExtractJSONObject(raw)
	if !ok {
		return 0, &MalformedResponseError{Message: "no balanced JSON object found", Raw: raw}
	}
	if err := validatePayload(totalYearsSchema, obj); err != nil {
		return 0, &MalformedResponseError{Message: err.Error(), Raw: raw}
	}

	var payload struct {
		TotalYears float64 `json:"total_years"`
	}
	if err := json.Unmarshal([]byte(obj), &payload); err != nil {
		return 0, &MalformedResponseError{Message: err.Error(), Raw: raw}
	}

	return math.Round(payload.TotalYears*10) / 10, nil
}

// AskSkills asks the oracle for the skill list. Elements are returned as
// decoded JSON values; non-string elements are the extractor's problem.
func (o *Oracle) AskSkills(ctx context.Context, text string) ([]any, error) {
	prompt := o.buildSkillsPrompt(text)

	raw, err := o.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw = CleanJSONBlock(raw)
	if obj, ok := ExtractJSONObject(raw); ok {
		if err := validatePayload(skillsSchema, obj); err != nil {
			return nil, &MalformedResponseError{Message: err.Error(), Raw: raw}
		}
		var payload struct {
			Skills []any `json:"skills"`
		}
		if err := json.Unmarshal([]byte(obj), &payload); err != nil {
			return nil, &MalformedResponseError{Message: err.Error(), Raw: raw}
		}
		return payload.Skills, nil
	}

	// No balanced object: the model may have answered with a bare list.
	if items, ok := ExtractStringArray(raw); ok {
		values := make([]any, len(items))
		for i, s := range items {
			values[i] = s
		}
		return values, nil
	}

	return nil, &MalformedResponseError{Message: "no balanced JSON object or array found", Raw: raw}
}

// generate performs the LLM call with bounded retry. Only transport-class
// failures are retried; a response that arrives but fails to parse is handled
// by the callers as permanent.
func (o *Oracle) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= o.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := o.cfg.BackoffBase * time.Duration(attempt)
			if o.cfg.BackoffCap > 0 && backoff > o.cfg.BackoffCap {
				backoff = o.cfg.BackoffCap
			}
			o.sleep(backoff)
		}

		reqCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
		raw, err := o.client.GenerateJSON(reqCtx, prompt, TierLite)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		return raw, nil
	}

	return "", &UnavailableError{Attempts: o.cfg.MaxRetries + 1, Cause: lastErr}
}

// truncate enforces the character budget before prompt construction. The cut
// backs off to the previous rune boundary so a multibyte rune straddling the
// limit never leaves an invalid UTF-8 tail in the prompt.
func truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}
	cut := maxChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func (o *Oracle) buildYearsPrompt(text string) string {
	today := o.now().Format("2006-01-02")
	return fmt.Sprintf(`Return ONLY JSON: {"total_years": <float>}.

Compute TOTAL professional work experience:
- Merge overlapping roles.
- Convert months into decimal years (1 decimal).
- Treat "present/current" as %s.
- If unsure, return 0.0.
- DO NOT output anything except JSON.

Resume:
"""%s"""`, today, truncate(text, o.cfg.MaxInputChars))
}

func (o *Oracle) buildSkillsPrompt(text string) string {
	return fmt.Sprintf(`You are an extractor. Given the resume text below, return ONLY a single JSON object:

{"skills": [<list of canonical short skill strings>]}

Rules:
- Return skill tokens like "python", "c++", "embedded linux", "device tree", "u-boot", "yocto", "i2c", "spi", "git".
- Normalize common variants (react.js -> react, node js -> node.js, powerbi -> power bi).
- Deduplicate and return only skills actually mentioned in the resume.
- Do NOT include company names, addresses, or long descriptive sentences.
- Output EXACTLY one JSON object and nothing else.

Resume:
"""%s"""`, truncate(text, o.cfg.MaxInputChars))
}
