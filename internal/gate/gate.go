// Package gate decides whether reported coverage satisfies the configured
// threshold. The decision never influences the report content, it exists for
// callers which fail a build on insufficient coverage.
package gate

import "github.com/Kantuz001/minicover/internal/metrics"

// Result is the outcome of a threshold evaluation.
type Result struct {
	Percent  float64
	Required float64
	Passed   bool
}

// Evaluate compares the covered statement percentage of the specified counter
// against the required percentage.
func Evaluate(counter metrics.Counter, requiredPercent float64) Result {
	percent := counter.Percentage()
	return Result{
		Percent:  percent,
		Required: requiredPercent,
		Passed:   percent >= requiredPercent,
	}
}
