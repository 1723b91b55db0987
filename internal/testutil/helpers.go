// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-interpolation/internal/mathutil"
)

// Default tolerances for various test scenarios.
const (
	InterpolationTolerance = 1e-9
	GoldenTolerance        = 1e-10
)

// AssertCoefficientsInDelta verifies that two coefficient slices have the same
// length and agree element-wise within tolerance.
func AssertCoefficientsInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"coefficient %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertPassesThrough verifies that the polynomial Σ coeffs[i]·(x-center)ⁱ
// reproduces ys[i] at xs[i] within tolerance.
func AssertPassesThrough(t *testing.T, coeffs []float64, center float64, xs, ys []float64, tolerance float64) bool {
	t.Helper()
	for i := range xs {
		got := mathutil.Horner(coeffs, xs[i]-center)
		if !AssertRelativeError(t, ys[i], got, tolerance,
			"polynomial misses point %d (%v, %v): got %v", i, xs[i], ys[i], got) {
			return false
		}
	}
	return true
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

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance. Values near zero are compared absolutely.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.Abs(expected) < 1 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
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
