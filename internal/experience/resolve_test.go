package experience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonathan/resume-insights/internal/llm"
	"github.com/stretchr/testify/assert"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{"total_years": 0.0}`, nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func newTestResolver(client llm.Client, mode RoundingMode) *Resolver {
	oracle := llm.NewOracle(client, llm.OracleConfig{
		MaxInputChars: 15000,
		MaxRetries:    0,
		Timeout:       time.Second,
	})
	return NewResolver(oracle, mode, nil)
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		mode     RoundingMode
		expected string
	}{
		{"Zero", 0.0, RoundNearest, "0 years"},
		{"Whole years", 2.0, RoundNearest, "2 years"},
		{"Half year rounds to six months", 2.5, RoundNearest, "2 years 6 months"},
		{"Remainder carries into a full year", 1.99, RoundNearest, "2 years"},
		{"Months only", 0.5, RoundNearest, "6 months"},
		{"Small remainder rounds to a month", 0.08, RoundNearest, "1 months"},
		{"Floor keeps partial months", 1.99, RoundFloor, "1 years 11 months"},
		{"Floor half year", 2.5, RoundFloor, "2 years 6 months"},
		{"Floor truncates below a month", 0.08, RoundFloor, "0 years"},
		{"Negative clamps to zero", -3.0, RoundNearest, "0 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanDuration(tt.decimal, tt.mode))
		})
	}
}

func TestResolve_OracleSuccess(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"total_years": 4.5}`, nil
		},
	}

	dur := newTestResolver(mockClient, RoundNearest).Resolve(context.Background(), "resume text")
	assert.InDelta(t, 4.5, dur.DecimalYears, 1e-9)
	assert.Equal(t, "4 years 6 months", dur.Human)
}

func TestResolve_OracleUnavailableFallsBack(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	dur := newTestResolver(mockClient, RoundNearest).Resolve(context.Background(),
		"8 years of backend development, earlier 3 yrs of QA")
	assert.InDelta(t, 8.0, dur.DecimalYears, 1e-9)
	assert.Equal(t, "8 years", dur.Human)
}

func TestResolve_MalformedFallsBack(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "roughly a decade, I'd say", nil
		},
	}

	dur := newTestResolver(mockClient, RoundNearest).Resolve(context.Background(),
		"no durations in this text")
	assert.InDelta(t, 0.0, dur.DecimalYears, 1e-9)
	assert.Equal(t, "0 years", dur.Human)
}

func TestResolve_FallbackWithNoMentions(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("timeout")
		},
	}

	dur := newTestResolver(mockClient, RoundNearest).Resolve(context.Background(), "fresh graduate")
	assert.InDelta(t, 0.0, dur.DecimalYears, 1e-9)
	assert.Equal(t, "0 years", dur.Human)
}
