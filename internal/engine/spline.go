package engine

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tphakala/go-interpolation/internal/mathutil"
)

// Piece is one polynomial of a spline together with the x-interval of the
// points it was built from.
type Piece struct {
	Coeffs []float64 // lowest power first
	XMin   float64
	XMax   float64

	// Offset is subtracted from x before the polynomial is evaluated.
	// Pieces built from absolute coordinates leave it at zero.
	Offset float64
}

// Eval evaluates the piece's polynomial at x.
func (p Piece) Eval(x float64) float64 {
	return mathutil.Horner(p.Coeffs, x-p.Offset)
}

// LinearPieces fits a degree-1 polynomial through every pair of consecutive
// points. Points are used in the given order; sorting is the caller's job.
func LinearPieces(xs, ys []float64) ([]Piece, error) {
	if len(xs) < linearSplinePoints {
		return nil, fmt.Errorf("%w: linear spline needs at least %d points, got %d",
			ErrTooFewPoints, linearSplinePoints, len(xs))
	}

	pieces := make([]Piece, 0, len(xs)-1)
	for i := 0; i+1 < len(xs); i++ {
		coeffs, _, err := Fit(xs[i:i+2], ys[i:i+2], FitParams{Degree: linearSplineDegree})
		if err != nil {
			return nil, fmt.Errorf("linear piece %d: %w", i, err)
		}
		pieces = append(pieces, Piece{Coeffs: coeffs, XMin: xs[i], XMax: xs[i+1]})
	}

	return pieces, nil
}

// ThreePointCubic solves the natural cubic spline through exactly three
// points and returns the two cubics, lowest power first.
func ThreePointCubic(xs, ys []float64) ([2][]float64, error) {
	var out [2][]float64
	if len(xs) != triplePoints || len(ys) != triplePoints {
		return out, fmt.Errorf("%w: cubic spline segment needs exactly %d points, got %d",
			ErrInvalidConfig, triplePoints, len(xs))
	}

	a, b := BuildThreePointSplineSystem(xs, ys)
	solution, err := SolveSquare(a, b)
	if err != nil {
		return out, err
	}

	// The system is ordered highest power first.
	out[0] = slices.Clone(solution[:cubicCoefficients])
	out[1] = slices.Clone(solution[cubicCoefficients:])
	slices.Reverse(out[0])
	slices.Reverse(out[1])

	return out, nil
}

// CubicPieces slides a three-point window over the points, advancing two
// points at a time, and solves each window independently. Window k covers
// points 2k, 2k+1 and 2k+2. With an even number of points the last point is
// not covered.
func CubicPieces(xs, ys []float64) ([]Piece, error) {
	if len(xs) < triplePoints {
		return nil, fmt.Errorf("%w: cubic spline needs at least %d points, got %d",
			ErrTooFewPoints, triplePoints, len(xs))
	}

	pieces := make([]Piece, 0, CubicPieceCount(len(xs)))
	for i := 0; i+triplePoints <= len(xs); i += tripleStride {
		pair, err := ThreePointCubic(xs[i:i+triplePoints], ys[i:i+triplePoints])
		if err != nil {
			return nil, fmt.Errorf("cubic window at point %d: %w", i, err)
		}
		pieces = append(pieces,
			Piece{Coeffs: pair[0], XMin: xs[i], XMax: xs[i+1]},
			Piece{Coeffs: pair[1], XMin: xs[i+1], XMax: xs[i+2]},
		)
	}

	return pieces, nil
}

// CubicPieceCount returns how many cubics CubicPieces produces for n points.
func CubicPieceCount(n int) int {
	if n < triplePoints {
		return 0
	}
	return 2 * ((n - 1) / tripleStride)
}

// Locate returns the index of the piece whose interval contains x.
// Pieces must be ordered by x. Positions before the first piece map to 0 and
// positions after the last piece map to len(pieces)-1.
func Locate(pieces []Piece, x float64) int {
	i := sort.Search(len(pieces), func(i int) bool { return x <= pieces[i].XMax })
	if i == len(pieces) {
		return len(pieces) - 1
	}
	return i
}

// EvalPieces evaluates the piecewise polynomial at x.
func EvalPieces(pieces []Piece, x float64) float64 {
	return pieces[Locate(pieces, x)].Eval(x)
}
