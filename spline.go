package interpolation

import (
	"fmt"
	"math"

	"github.com/tphakala/go-interpolation/internal/engine"
)

// LinearSpline fits a straight line through every pair of consecutive
// points and returns len(points)-1 degree-1 polynomials. Points must be
// sorted by x; the function does not sort them.
func LinearSpline(points []Point) ([]Polynomial, error) {
	pieces, err := linearPieces(points)
	if err != nil {
		return nil, err
	}
	return piecePolynomials(pieces), nil
}

// ThreePointCubicSpline returns the two cubics of the natural cubic spline
// through exactly three points: the first spans points[0]..points[1] and the
// second points[1]..points[2]. Both interpolate their end points, share first
// and second derivatives at points[1], and have zero second derivative at
// points[0] and points[2] respectively.
func ThreePointCubicSpline(points []Point) ([]Polynomial, error) {
	if len(points) != cubicWindowPoints {
		return nil, fmt.Errorf("%w: pass exactly %d points to the three-point cubic spline, got %d",
			ErrInvalidConfig, cubicWindowPoints, len(points))
	}

	xs, ys, err := splitPoints(points)
	if err != nil {
		return nil, err
	}

	pair, err := engine.ThreePointCubic(xs, ys)
	if err != nil {
		return nil, err
	}
	return []Polynomial{pair[0], pair[1]}, nil
}

// CubicSpline builds cubic splines over windows of three points starting at
// points 0, 2, 4, ... and returns two cubics per window. Every window is
// solved on its own with the natural condition at both of its ends, so
// curvature is matched inside a window but not across the knot two windows
// share. With an even number of points the last interval is not covered.
// Points must be sorted by x.
func CubicSpline(points []Point) ([]Polynomial, error) {
	pieces, err := cubicPieces(points)
	if err != nil {
		return nil, err
	}
	return piecePolynomials(pieces), nil
}

// Spline is a piecewise polynomial built from sorted points. Use
// NewLinearSpline or NewCubicSpline; a zero Spline has no pieces and
// evaluates to NaN everywhere.
type Spline struct {
	pieces []engine.Piece
}

// NewLinearSpline builds a Spline from LinearSpline's pieces.
func NewLinearSpline(points []Point) (*Spline, error) {
	pieces, err := linearPieces(points)
	if err != nil {
		return nil, err
	}
	return &Spline{pieces: pieces}, nil
}

// NewCubicSpline builds a Spline from CubicSpline's pieces.
func NewCubicSpline(points []Point) (*Spline, error) {
	pieces, err := cubicPieces(points)
	if err != nil {
		return nil, err
	}
	return &Spline{pieces: pieces}, nil
}

// Pieces returns the polynomials of the spline in order.
func (s *Spline) Pieces() []Polynomial {
	return piecePolynomials(s.pieces)
}

// Len returns the number of pieces.
func (s *Spline) Len() int {
	return len(s.pieces)
}

// Domain returns the x range covered by the pieces, or NaN, NaN when the
// spline has none.
func (s *Spline) Domain() (xMin, xMax float64) {
	if len(s.pieces) == 0 {
		return math.NaN(), math.NaN()
	}
	return s.pieces[0].XMin, s.pieces[len(s.pieces)-1].XMax
}

// Eval evaluates the piece whose interval contains x. Outside the domain
// the first or last piece is extrapolated. A spline without pieces
// returns NaN.
func (s *Spline) Eval(x float64) float64 {
	if len(s.pieces) == 0 {
		return math.NaN()
	}
	return engine.EvalPieces(s.pieces, x)
}

// Sample evaluates the spline at every x in xs.
func (s *Spline) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = s.Eval(x)
	}
	return ys
}

func linearPieces(points []Point) ([]engine.Piece, error) {
	if len(points) < minLinearSplinePoints {
		return nil, fmt.Errorf("%w: linear spline needs at least %d points, got %d",
			ErrTooFewPoints, minLinearSplinePoints, len(points))
	}

	xs, ys, err := splitPoints(points)
	if err != nil {
		return nil, err
	}
	return engine.LinearPieces(xs, ys)
}

func cubicPieces(points []Point) ([]engine.Piece, error) {
	if len(points) < minCubicSplinePoints {
		return nil, fmt.Errorf("%w: cubic spline needs at least %d points, got %d",
			ErrTooFewPoints, minCubicSplinePoints, len(points))
	}

	xs, ys, err := splitPoints(points)
	if err != nil {
		return nil, err
	}
	return engine.CubicPieces(xs, ys)
}

func piecePolynomials(pieces []engine.Piece) []Polynomial {
	polys := make([]Polynomial, len(pieces))
	for i, p := range pieces {
		polys[i] = append(Polynomial(nil), p.Coeffs...)
	}
	return polys
}
