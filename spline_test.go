package interpolation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-interpolation/internal/mathutil"
	"github.com/tphakala/go-interpolation/internal/testutil"
)

// TestLinearSpline_Golden tests the linear spline through the Witch of
// Agnesi fixture.
func TestLinearSpline_Golden(t *testing.T) {
	want := []Polynomial{
		{1.793103448275862, 0.12413793103448276},
		{2.523076923076923, 0.2153846153846154},
		{3.5384615384615383, 0.38461538461538464},
		{4.4, 0.6},
		{4.0, 0.4},
		{4.0, -0.4},
		{4.4, -0.6},
		{3.5384615384615383, -0.38461538461538464},
		{2.523076923076923, -0.2153846153846154},
		{1.793103448275862, -0.12413793103448276},
	}

	got, err := LinearSpline(agnesiPoints())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, testutil.GoldenTolerance)); diff != "" {
		t.Errorf("linear spline mismatch (-want +got):\n%s", diff)
	}
}

// TestLinearSpline_Exactness tests that every piece hits both its points.
func TestLinearSpline_Exactness(t *testing.T) {
	points := []Point{{X: -1, Y: 2}, {X: 0.5, Y: -1}, {X: 3, Y: 4}, {X: 7, Y: 4}}

	pieces, err := LinearSpline(points)
	require.NoError(t, err)
	require.Len(t, pieces, len(points)-1)

	for i, p := range pieces {
		assert.Equal(t, 1, p.Degree())
		assert.InDelta(t, points[i].Y, p.Eval(points[i].X), 1e-12, "piece %d start", i)
		assert.InDelta(t, points[i+1].Y, p.Eval(points[i+1].X), 1e-12, "piece %d end", i)
	}
}

// TestCubicSpline_Golden tests the cubic spline through the Witch of Agnesi
// fixture.
func TestCubicSpline_Golden(t *testing.T) {
	want := []Polynomial{
		{7.267904509283819, 1.8122015915119363, 0.17108753315649866, 0.005702917771883289},
		{1.4281167108753317, -0.3777188328912467, -0.1026525198938992, -0.005702917771883289},
		{6.123076923076923, 1.7846153846153847, 0.2423076923076923, 0.013461538461538462},
		{4.4, 0.49230769230769234, -0.08076923076923077, -0.013461538461538462},
		{4.0, 0.0, -0.3, -0.05},
		{4.0, 0.0, -0.3, 0.05},
		{4.4, -0.49230769230769234, -0.08076923076923077, 0.013461538461538462},
		{6.123076923076923, -1.7846153846153847, 0.2423076923076923, -0.013461538461538462},
		{1.4281167108753317, 0.3777188328912467, -0.1026525198938992, 0.005702917771883289},
		{7.267904509283819, -1.8122015915119363, 0.17108753315649866, -0.005702917771883289},
	}

	got, err := CubicSpline(agnesiPoints())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("cubic spline mismatch (-want +got):\n%s", diff)
	}
}

// TestCubicSpline_WindowProperties tests interpolation, derivative matching
// at each window's middle point and zero curvature at its ends.
func TestCubicSpline_WindowProperties(t *testing.T) {
	points := agnesiPoints()

	pieces, err := CubicSpline(points)
	require.NoError(t, err)

	for w := 0; 2*w+1 < len(pieces); w++ {
		q1, q2 := pieces[2*w], pieces[2*w+1]
		x0, x1, x2 := points[2*w], points[2*w+1], points[2*w+2]

		assert.InDelta(t, x0.Y, q1.Eval(x0.X), 1e-9, "window %d", w)
		assert.InDelta(t, x1.Y, q1.Eval(x1.X), 1e-9, "window %d", w)
		assert.InDelta(t, x1.Y, q2.Eval(x1.X), 1e-9, "window %d", w)
		assert.InDelta(t, x2.Y, q2.Eval(x2.X), 1e-9, "window %d", w)

		assert.InDelta(t, q1.Derivative().Eval(x1.X), q2.Derivative().Eval(x1.X), 1e-9, "window %d slope", w)
		assert.InDelta(t, q1.Derivative().Derivative().Eval(x1.X), q2.Derivative().Derivative().Eval(x1.X), 1e-9,
			"window %d curvature", w)

		assert.InDelta(t, 0, mathutil.Horner(mathutil.NthDerivative(q1, 2), x0.X), 1e-9, "window %d left end", w)
		assert.InDelta(t, 0, mathutil.Horner(mathutil.NthDerivative(q2, 2), x2.X), 1e-9, "window %d right end", w)
	}
}

// TestCubicSpline_PieceCount tests the number of pieces per input size.
func TestCubicSpline_PieceCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{3, 2},
		{4, 2},
		{5, 4},
		{6, 4},
		{11, 10},
	}

	for _, tt := range tests {
		points := make([]Point, tt.n)
		for i := range points {
			points[i] = Point{X: float64(i), Y: float64(i * i)}
		}

		pieces, err := CubicSpline(points)
		require.NoError(t, err, "n=%d", tt.n)
		assert.Len(t, pieces, tt.want, "n=%d", tt.n)
	}
}

// TestSpline_TooFewPoints tests the minimum input sizes.
func TestSpline_TooFewPoints(t *testing.T) {
	_, err := LinearSpline([]Point{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = CubicSpline([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrTooFewPoints)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewCubicSpline(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

// TestThreePointCubicSpline tests the exactly-three-points operation.
func TestThreePointCubicSpline(t *testing.T) {
	points := agnesiPoints()[4:7]

	pair, err := ThreePointCubicSpline(points)
	require.NoError(t, err)
	require.Len(t, pair, 2)
	testutil.AssertCoefficientsInDelta(t, []float64{4, 0, -0.3, -0.05}, pair[0], 1e-12)
	testutil.AssertCoefficientsInDelta(t, []float64{4, 0, -0.3, 0.05}, pair[1], 1e-12)

	for _, n := range []int{2, 4} {
		_, err := ThreePointCubicSpline(agnesiPoints()[:n])
		assert.ErrorIs(t, err, ErrInvalidConfig, "n=%d", n)
	}
}

// TestCubicSpline_RepeatedX tests that a window with a repeated x fails
// numerically.
func TestCubicSpline_RepeatedX(t *testing.T) {
	_, err := CubicSpline([]Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}})
	assert.ErrorIs(t, err, ErrSingularSystem)
}

// TestCubicSpline_FarFromOrigin tests that windows whose absolute-coordinate
// systems exceed gonum's condition tolerance still solve and hit their knots.
func TestCubicSpline_FarFromOrigin(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"years", []Point{{X: 2000, Y: 1}, {X: 2010, Y: 2}, {X: 2020, Y: 0}}},
		{"unit steps near 1000", []Point{{X: 1000, Y: 1}, {X: 1001, Y: 2}, {X: 1002, Y: 0}}},
		{"two steps near 1570", []Point{{X: 1568, Y: 3}, {X: 1570, Y: 5}, {X: 1572, Y: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := CubicSpline(tt.points)
			require.NoError(t, err)
			require.Len(t, pieces, 2)

			p := tt.points
			assert.InDelta(t, p[0].Y, pieces[0].Eval(p[0].X), 1e-5)
			assert.InDelta(t, p[1].Y, pieces[0].Eval(p[1].X), 1e-5)
			assert.InDelta(t, p[1].Y, pieces[1].Eval(p[1].X), 1e-5)
			assert.InDelta(t, p[2].Y, pieces[1].Eval(p[2].X), 1e-5)
		})
	}
}

// TestSpline_Eval tests piece selection and extrapolation.
func TestSpline_Eval(t *testing.T) {
	points := agnesiPoints()

	for _, tc := range []struct {
		name  string
		build func([]Point) (*Spline, error)
	}{
		{"linear", NewLinearSpline},
		{"cubic", NewCubicSpline},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.build(points)
			require.NoError(t, err)
			assert.Equal(t, len(points)-1, s.Len())

			xMin, xMax := s.Domain()
			assert.Equal(t, -10.0, xMin)
			assert.Equal(t, 10.0, xMax)

			for _, p := range points {
				assert.InDelta(t, p.Y, s.Eval(p.X), 1e-9, "x=%v", p.X)
			}

			pieces := s.Pieces()
			assert.InDelta(t, pieces[0].Eval(-12), s.Eval(-12), 1e-12)
			assert.InDelta(t, pieces[len(pieces)-1].Eval(12), s.Eval(12), 1e-12)
			assert.InDelta(t, pieces[3].Eval(-3), s.Eval(-3), 1e-12)

			ys := s.Sample([]float64{-10, -3, 0})
			assert.InDeltaSlice(t, []float64{s.Eval(-10), s.Eval(-3), s.Eval(0)}, ys, 0)
		})
	}
}

// TestSpline_ZeroValue tests that a Spline without pieces reports an empty
// domain and NaN values instead of panicking.
func TestSpline_ZeroValue(t *testing.T) {
	var s Spline

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Pieces())

	xMin, xMax := s.Domain()
	assert.True(t, math.IsNaN(xMin))
	assert.True(t, math.IsNaN(xMax))

	assert.True(t, math.IsNaN(s.Eval(1)))
	ys := s.Sample([]float64{0, 1})
	require.Len(t, ys, 2)
	for _, y := range ys {
		assert.True(t, math.IsNaN(y))
	}
}

// TestSpline_PiecesAreCopies tests that callers cannot modify the spline.
func TestSpline_PiecesAreCopies(t *testing.T) {
	s, err := NewLinearSpline([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	s.Pieces()[0][1] = 42
	assert.InDelta(t, 0.5, s.Eval(0.5), 1e-15)
}

func BenchmarkCubicSpline(b *testing.B) {
	points := WitchOfAgnesiPoints(-500, 500, 1, 2)
	for b.Loop() {
		_, _ = CubicSpline(points)
	}
}
