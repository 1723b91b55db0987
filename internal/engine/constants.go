package engine

// Polynomial shape constants
const (
	// linearSplineDegree is the degree of every linear spline piece.
	linearSplineDegree = 1

	// linearSplinePoints is the number of points one linear piece spans.
	linearSplinePoints = 2

	// cubicCoefficients is the number of coefficients of a cubic polynomial.
	cubicCoefficients = 4
)

// Three-point cubic spline system
const (
	// triplePoints is the number of points in one cubic spline window.
	triplePoints = 3

	// tripleStride is how far the cubic spline window advances per step.
	// Windows share their outer points only.
	tripleStride = 2

	// tripleUnknowns is the size of the per-window linear system:
	// four coefficients for each of the two cubics.
	tripleUnknowns = 2 * cubicCoefficients

	// Derivative factors of a*x^3 + b*x^2 + c*x + d.
	// First derivative: 3a*x^2 + 2b*x + c
	// Second derivative: 6a*x + 2b
	firstDerivCubicFactor   = 3.0
	firstDerivSquareFactor  = 2.0
	secondDerivCubicFactor  = 6.0
	secondDerivSquareFactor = 2.0
)

// Spline stage constants
const (
	// positionEpsilon absorbs rounding when the last output position lands on
	// the final input sample.
	positionEpsilon = 1e-9

	// minRatio and maxRatio bound the resampling ratio (output/input).
	minRatio = 1.0 / 256.0
	maxRatio = 256.0
)
