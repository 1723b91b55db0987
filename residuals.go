package interpolation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-interpolation/internal/simdops"
)

// ResidualStats summarises the residuals yᵢ - p(xᵢ) of a fit.
type ResidualStats struct {
	// SumOfSquares is Σ rᵢ², the quantity least squares minimises.
	SumOfSquares float64

	Mean   float64
	Median float64

	// StdDev is the population standard deviation.
	StdDev float64

	// MaxAbs is the largest absolute residual.
	MaxAbs float64

	// RMS is sqrt(SumOfSquares / n).
	RMS float64
}

// ErrorAt returns |reference(x) - p(x)|, the interpolation error of p at x.
func ErrorAt(reference func(float64) float64, p CenteredPolynomial, x float64) float64 {
	return math.Abs(reference(x) - p.Eval(x))
}

// Residuals returns yᵢ - p(xᵢ) for every point.
func Residuals(points []Point, p CenteredPolynomial) []float64 {
	r := make([]float64, len(points))
	for i, pt := range points {
		r[i] = pt.Y - p.Eval(pt.X)
	}
	return r
}

// AnalyzeResiduals computes summary statistics of the residuals of p over
// points.
func AnalyzeResiduals(points []Point, p CenteredPolynomial) (ResidualStats, error) {
	if len(points) == 0 {
		return ResidualStats{}, fmt.Errorf("%w: no points to analyze", ErrTooFewPoints)
	}

	r := Residuals(points, p)
	data := stats.Float64Data(r)

	mean, err := stats.Mean(data)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("residual mean: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("residual median: %w", err)
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return ResidualStats{}, fmt.Errorf("residual standard deviation: %w", err)
	}

	sumSq := simdops.SumOfSquares(r)

	return ResidualStats{
		SumOfSquares: sumSq,
		Mean:         mean,
		Median:       median,
		StdDev:       stdDev,
		MaxAbs:       floats.Norm(r, math.Inf(1)),
		RMS:          math.Sqrt(sumSq / float64(len(r))),
	}, nil
}
