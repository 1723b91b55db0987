// Package interpolation fits polynomials and splines through sample points
// in pure Go.
//
// Linear systems are assembled and solved with gonum's mat package using LU
// factorisation. A singular system is reported as an error; an
// ill-conditioned one still returns gonum's solution, and centering x near
// the data keeps such fits accurate.
//
// # Features
//
//   - Exact polynomial interpolation through N points
//   - Least-squares polynomials of any lower degree via the normal equations
//   - Optional centering of x for well-conditioned fits far from the origin
//   - Linear splines and natural cubic splines over three-point windows
//   - Conversion of coefficients to evaluable functions and printable expressions
//   - Residual statistics for judging a fit
//   - A spline-based sample rate converter for uniformly sampled signals
//
// # Quick Start
//
// Interpolate three points exactly:
//
//	points := []interpolation.Point{{X: 2, Y: 3.2}, {X: 4, Y: 2}, {X: 6, Y: 1.2307692307692308}}
//	coeffs, err := interpolation.Fit(points, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	curve := interpolation.CoefficientsToFunction(coeffs, 0)
//	fmt.Println(curve(3)) // [3 y(3) 0]
//
// Fit a line of best fit, centered on the data:
//
//	coeffs, err := interpolation.Fit(points, &interpolation.FitConfig{
//	    Degree:       1,
//	    LeastSquares: true,
//	    Center:       4,
//	})
//
// # Coefficient Order
//
// A [Polynomial] stores coefficients lowest power first, so p[i] multiplies
// (x - center)ⁱ. Fits with [FitConfig.Center] set return coefficients in the
// shifted variable; pass the same center to [CoefficientsToFunction].
//
// # Splines
//
// [LinearSpline] returns one line per pair of consecutive points.
// [CubicSpline] solves the natural cubic spline of each window of three
// points, windows starting at every second point. Each window is independent:
// first and second derivatives match at a window's middle point, but only the
// values match where two windows meet. [NewLinearSpline] and [NewCubicSpline]
// wrap the pieces in a [Spline] that can be evaluated anywhere.
//
// Spline inputs must be sorted by x; use [SortByX] when they are not.
//
// # Resampling
//
// [Resampler] treats sample i of a signal as the point (i, s[i]) and evaluates
// a linear or cubic spline at the output rate:
//
//	output, err := interpolation.ResampleMono(input, 44100, 48000, interpolation.MethodCubic)
//
// Splines do not band-limit the signal, so downsampling aliases. Each call to
// Process is independent and nothing is buffered between calls.
//
// # Errors
//
// Usage errors wrap [ErrInvalidConfig]; numeric failures wrap
// [ErrSingularSystem]. Use errors.Is to tell them apart.
//
// # Thread Safety
//
// All functions are safe for concurrent use. A [Resampler] holds no mutable
// state and may be shared between goroutines.
package interpolation
