package interpolation

// Fit configuration
const (
	// DegreeAuto selects a degree of len(points)-1, the exact interpolating
	// polynomial.
	DegreeAuto = -1

	// minFitPoints is the minimum number of points for any polynomial fit.
	minFitPoints = 1
)

// Spline point requirements
const (
	minLinearSplinePoints = 2 // One linear piece
	minCubicSplinePoints  = 3 // One three-point window
	cubicWindowPoints     = 3 // ThreePointCubicSpline input size
)

// Witch of Agnesi sample defaults, as used by the lesson data.
const (
	defaultAgnesiSpacing = 1
	defaultAgnesiRadius  = 1.0
)

// Resampling limits
const (
	maxChannels = 256 // Maximum supported channel count
)

// Expression rendering
const (
	expressionZero = "0"
)
