package interpolation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-interpolation/internal/engine"
	"github.com/tphakala/go-interpolation/internal/mathutil"
)

// Point is an (X, Y) sample to interpolate through.
type Point struct {
	X, Y float64
}

// Polynomial holds polynomial coefficients ordered lowest power first:
// p[i] multiplies xⁱ. The degree is len(p)-1.
type Polynomial []float64

// Degree returns the polynomial degree, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	return mathutil.Horner(p, x)
}

// Derivative returns the derivative polynomial.
func (p Polynomial) Derivative() Polynomial {
	return mathutil.Derivative(p)
}

// FitConfig holds the options for Fit and FitWithMatrices.
// A nil *FitConfig is equivalent to DefaultFitConfig().
type FitConfig struct {
	// Degree of the fitted polynomial. DegreeAuto selects len(points)-1.
	// Note that 0 requests a constant polynomial, not the default.
	Degree int

	// LeastSquares must be set to fit a polynomial whose degree is lower than
	// len(points)-1. The system is then solved through its normal equations
	// and the polynomial no longer passes through every point.
	LeastSquares bool

	// Center is subtracted from every x before it is raised to a power, so
	// the result is Σ cᵢ·(x - Center)ⁱ. Centering near the data improves
	// conditioning for large x. The default of 0 is the same as no centering.
	Center float64
}

// DefaultFitConfig returns the exact-interpolation configuration:
// degree len(points)-1, no least squares, no centering.
func DefaultFitConfig() FitConfig {
	return FitConfig{Degree: DegreeAuto}
}

// Validate checks the configuration against the number of points to fit.
func (c *FitConfig) Validate(numPoints int) error {
	if numPoints < minFitPoints {
		return fmt.Errorf("%w: fit needs at least %d point, got %d", ErrTooFewPoints, minFitPoints, numPoints)
	}

	if c.Degree < DegreeAuto {
		return fmt.Errorf("%w: degree must be >= 0 or DegreeAuto, got %d", ErrInvalidConfig, c.Degree)
	}

	if math.IsNaN(c.Center) || math.IsInf(c.Center, 0) {
		return fmt.Errorf("%w: center must be finite", ErrInvalidConfig)
	}

	degree := c.degreeFor(numPoints)
	exact := numPoints - 1

	if degree < exact && !c.LeastSquares {
		return fmt.Errorf("%w (degree %d, %d points); set LeastSquares to fit a line of best fit",
			ErrLeastSquaresRequired, degree, numPoints)
	}

	// Least squares does not help here: the normal equations of an
	// underdetermined fit are rank deficient.
	if degree > exact {
		return fmt.Errorf("%w: degree %d is above %d, the highest %d points can determine",
			ErrInvalidConfig, degree, exact, numPoints)
	}

	return nil
}

// degreeFor resolves DegreeAuto for the given number of points.
func (c *FitConfig) degreeFor(numPoints int) int {
	if c.Degree == DegreeAuto {
		return numPoints - 1
	}
	return c.Degree
}

// FitResult is a fitted polynomial together with the linear system A·c = B
// that produced it. For least-squares fits A and B are the normal equations
// AᵀA and Aᵀb, not the original rows.
type FitResult struct {
	Coefficients Polynomial
	A            *mat.Dense
	B            *mat.VecDense
}

// Fit returns the coefficients, lowest power first, of the polynomial
// through points, or of the least-squares polynomial when config allows it.
//
// The fit fails with ErrLeastSquaresRequired when the degree is below
// len(points)-1 and config.LeastSquares is unset, and with
// ErrSingularSystem when the system cannot be solved, e.g. two points
// sharing an x value.
func Fit(points []Point, config *FitConfig) (Polynomial, error) {
	result, err := FitWithMatrices(points, config)
	if err != nil {
		return nil, err
	}
	return result.Coefficients, nil
}

// FitWithMatrices is like Fit but also returns the solved system.
func FitWithMatrices(points []Point, config *FitConfig) (*FitResult, error) {
	cfg := DefaultFitConfig()
	if config != nil {
		cfg = *config
	}

	if err := cfg.Validate(len(points)); err != nil {
		return nil, err
	}

	xs, ys, err := splitPoints(points)
	if err != nil {
		return nil, err
	}

	coeffs, system, err := engine.Fit(xs, ys, engine.FitParams{
		Degree:       cfg.degreeFor(len(points)),
		LeastSquares: cfg.LeastSquares,
		Center:       cfg.Center,
	})
	if err != nil {
		return nil, err
	}

	return &FitResult{
		Coefficients: coeffs,
		A:            system.A,
		B:            system.B,
	}, nil
}

// splitPoints separates coordinates and rejects non-finite values.
func splitPoints(points []Point) (xs, ys []float64, err error) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, nil, fmt.Errorf("%w: point %d is (%v, %v)", ErrInvalidPoints, i, p.X, p.Y)
		}
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
