package gate

import (
	"github.com/Kantuz001/minicover/internal/metrics"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEvaluate(t *testing.T) {
	var testCases = []struct {
		name     string
		counter  metrics.Counter
		required float64
		passed   bool
	}{
		{"above threshold", metrics.Counter{Statements: 10, CoveredStatements: 9}, 80, true},
		{"at threshold", metrics.Counter{Statements: 4, CoveredStatements: 3}, 75, true},
		{"below threshold", metrics.Counter{Statements: 10, CoveredStatements: 8}, 90, false},
		{"nothing to cover", metrics.Counter{}, 90, true},
		{"nothing covered", metrics.Counter{Statements: 10}, 90, false},
		{"zero threshold", metrics.Counter{Statements: 10}, 0, true},
	}

	for _, testCase := range testCases {
		result := Evaluate(testCase.counter, testCase.required)

		assert.Equal(t, testCase.passed, result.Passed, testCase.name)
		assert.Equal(t, testCase.required, result.Required, testCase.name)
	}
}

func TestEvaluateReportsPercent(t *testing.T) {
	result := Evaluate(metrics.Counter{Statements: 4, CoveredStatements: 1}, 50)

	assert.Equal(t, 25.0, result.Percent)
	assert.False(t, result.Passed)
}
