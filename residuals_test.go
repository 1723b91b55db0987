package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-interpolation/internal/testutil"
)

// TestResiduals_ExactFit tests that an interpolating polynomial leaves no
// residual.
func TestResiduals_ExactFit(t *testing.T) {
	points := WitchOfAgnesiPoints(-4, 4, 2, 2)
	coeffs, err := Fit(points, nil)
	require.NoError(t, err)

	r := Residuals(points, CenteredPolynomial{Coefficients: coeffs})
	require.Len(t, r, len(points))
	for i, v := range r {
		assert.InDelta(t, 0, v, 1e-9, "residual %d", i)
	}
}

// TestAnalyzeResiduals_LeastSquaresLine tests the statistics of a line of
// best fit over the Witch of Agnesi fixture.
func TestAnalyzeResiduals_LeastSquaresLine(t *testing.T) {
	points := agnesiPoints()
	coeffs, err := Fit(points, &FitConfig{Degree: 1, LeastSquares: true})
	require.NoError(t, err)

	p := CenteredPolynomial{Coefficients: coeffs}
	st, err := AnalyzeResiduals(points, p)
	require.NoError(t, err)

	r := Residuals(points, p)
	var sumSq, maxAbs float64
	for _, v := range r {
		sumSq += v * v
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	// Residuals of a least-squares fit with a constant term sum to zero.
	assert.InDelta(t, 0, st.Mean, 1e-12)
	assert.InDelta(t, sumSq, st.SumOfSquares, 1e-12)
	assert.InDelta(t, maxAbs, st.MaxAbs, 1e-15)
	assert.InDelta(t, math.Sqrt(sumSq/float64(len(r))), st.RMS, 1e-12)
	assert.InDelta(t, st.RMS, st.StdDev, 1e-12, "zero mean makes stddev equal RMS")

	// The peak at x=0 is the worst-fitted point.
	assert.InDelta(t, 4-coeffs[0], st.MaxAbs, 1e-12)
	testutil.AssertInRange(t, st.Median, -2, 0)
}

// TestAnalyzeResiduals_LeastSquaresIsMinimal tests that perturbing the
// least-squares coefficients never lowers the sum of squares.
func TestAnalyzeResiduals_LeastSquaresIsMinimal(t *testing.T) {
	points := agnesiPoints()
	coeffs, err := Fit(points, &FitConfig{Degree: 2, LeastSquares: true})
	require.NoError(t, err)

	best, err := AnalyzeResiduals(points, CenteredPolynomial{Coefficients: coeffs})
	require.NoError(t, err)

	for i := range coeffs {
		for _, delta := range []float64{-1e-3, 1e-3} {
			perturbed := append(Polynomial(nil), coeffs...)
			perturbed[i] += delta
			st, err := AnalyzeResiduals(points, CenteredPolynomial{Coefficients: perturbed})
			require.NoError(t, err)
			assert.Greater(t, st.SumOfSquares, best.SumOfSquares, "coefficient %d delta %v", i, delta)
		}
	}
}

// TestAnalyzeResiduals_Empty tests the empty input error.
func TestAnalyzeResiduals_Empty(t *testing.T) {
	_, err := AnalyzeResiduals(nil, CenteredPolynomial{Coefficients: Polynomial{1}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

// TestErrorAt tests the interpolation error against the sampled function.
func TestErrorAt(t *testing.T) {
	points := agnesiPoints()
	coeffs, err := Fit(points, nil)
	require.NoError(t, err)

	p := CenteredPolynomial{Coefficients: coeffs}
	witch := func(x float64) float64 { return WitchOfAgnesi(x, 2) }

	for _, pt := range points {
		assert.InDelta(t, 0, ErrorAt(witch, p, pt.X), 1e-8, "x=%v", pt.X)
	}

	// A degree-10 interpolant of the witch oscillates between the outer nodes.
	assert.Greater(t, ErrorAt(witch, p, 9), 0.1)
	assert.Less(t, ErrorAt(witch, p, 0.5), ErrorAt(witch, p, 9))
}
