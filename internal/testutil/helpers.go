// Package testutil provides reusable test helper functions for blend
// weight and curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// WeightTolerance bounds the deviation of a weight sum from 1.
	WeightTolerance = 1e-5

	// CurveTolerance bounds curve evaluation error introduced by
	// 16-bit keyframe quantization.
	CurveTolerance = 1e-3

	// ExactTolerance is for comparisons that should be exact up to
	// accumulated rounding.
	ExactTolerance = 1e-12
)

// AssertWeights verifies the two core weight invariants: every entry is
// non-negative and the entries sum to 1 within tolerance.
func AssertWeights(t *testing.T, weights []float64, msgAndArgs ...any) bool {
	t.Helper()
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return assert.Fail(t, "negative weight",
				"weights[%d]=%f is negative", i, w)
		}
		sum += w
	}
	return assert.InDelta(t, 1.0, sum, WeightTolerance,
		"weights sum to %f, want 1", sum)
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonicNonDecreasing verifies that a slice never decreases.
func AssertMonotonicNonDecreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
