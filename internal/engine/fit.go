package engine

import (
	"gonum.org/v1/gonum/mat"
)

// FitParams selects the polynomial fitted by Fit.
// Callers are expected to have validated Degree against the point count.
type FitParams struct {
	// Degree of the polynomial. Must be >= 0.
	Degree int

	// LeastSquares replaces the system with its normal equations.
	LeastSquares bool

	// Center shifts x before it is raised to powers.
	Center float64
}

// System is the square linear system that was actually solved.
type System struct {
	A *mat.Dense
	B *mat.VecDense
}

// Fit solves for polynomial coefficients, lowest power first.
func Fit(xs, ys []float64, params FitParams) ([]float64, System, error) {
	a, b := BuildFitSystem(xs, ys, params.Degree, params.Center)
	if params.LeastSquares {
		a, b = NormalEquations(a, b)
	}

	coeffs, err := SolveSquare(a, b)
	if err != nil {
		return nil, System{}, err
	}

	return coeffs, System{A: a, B: b}, nil
}
