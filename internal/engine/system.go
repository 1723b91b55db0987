package engine

import (
	"gonum.org/v1/gonum/mat"
)

// BuildFitSystem builds the system A·c = b whose solution c holds the
// coefficients, lowest power first, of a degree-d polynomial through
// (xs[i], ys[i]).
//
// Row i of A is [1, (xᵢ-center), (xᵢ-center)², ..., (xᵢ-center)^d] and bᵢ = yᵢ.
// A center of 0 leaves the x values untouched.
func BuildFitSystem(xs, ys []float64, degree int, center float64) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		shifted := x - center
		power := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, power)
			power *= shifted
		}
	}

	values := make([]float64, len(ys))
	copy(values, ys)

	return a, mat.NewVecDense(len(values), values)
}

// BuildThreePointSplineSystem builds the 8x8 system for two cubics
// q1 over [x0, x1] and q2 over [x1, x2].
//
// Unknowns are [a1, b1, c1, d1, a2, b2, c2, d2] with qk(x) = ak·x³ + bk·x² + ck·x + dk.
// Rows, in order:
//
//	q1(x0) = y0, q1(x1) = y1
//	q2(x1) = y1, q2(x2) = y2
//	q1'(x1) - q2'(x1) = 0
//	q1''(x1) - q2''(x1) = 0
//	q1''(x0) = 0
//	q2''(x2) = 0
func BuildThreePointSplineSystem(xs, ys []float64) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(tripleUnknowns, tripleUnknowns, nil)
	b := mat.NewVecDense(tripleUnknowns, nil)

	x0, x1, x2 := xs[0], xs[1], xs[2]

	// Interpolation rows. The first cubic owns columns 0-3, the second 4-7.
	row := 0
	for piece := range 2 {
		offset := piece * cubicCoefficients
		for k := piece; k <= piece+1; k++ {
			setCubicRow(a, row, offset, xs[k])
			b.SetVec(row, ys[k])
			row++
		}
	}

	// Matching first derivative at the middle point.
	first := []float64{firstDerivCubicFactor * x1 * x1, firstDerivSquareFactor * x1, 1, 0}
	for j, v := range first {
		a.Set(row, j, v)
		a.Set(row, cubicCoefficients+j, -v)
	}
	row++

	// Matching second derivative at the middle point.
	second := []float64{secondDerivCubicFactor * x1, secondDerivSquareFactor}
	for j, v := range second {
		a.Set(row, j, v)
		a.Set(row, cubicCoefficients+j, -v)
	}
	row++

	// Natural boundary at both outer points of the window.
	a.Set(row, 0, secondDerivCubicFactor*x0)
	a.Set(row, 1, secondDerivSquareFactor)
	row++
	a.Set(row, cubicCoefficients, secondDerivCubicFactor*x2)
	a.Set(row, cubicCoefficients+1, secondDerivSquareFactor)

	return a, b
}

// setCubicRow writes [x³, x², x, 1] into row starting at column offset.
func setCubicRow(a *mat.Dense, row, offset int, x float64) {
	a.Set(row, offset, x*x*x)
	a.Set(row, offset+1, x*x)
	a.Set(row, offset+2, x)
	a.Set(row, offset+3, 1)
}
