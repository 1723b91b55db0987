package engine

import (
	"errors"
	"fmt"
)

// Errors shared by the solver and the spline builders. Usage errors all wrap
// ErrInvalidConfig so callers can match the whole class with errors.Is.
var (
	// ErrInvalidConfig indicates an input shape or option combination that
	// cannot be solved as requested. It is reported before any linear algebra.
	ErrInvalidConfig = errors.New("invalid interpolation configuration")

	// ErrLeastSquaresRequired is returned when the requested degree is below
	// len(points)-1 and least squares was not explicitly requested.
	ErrLeastSquaresRequired = fmt.Errorf("%w: degree too low without acknowledging least squares", ErrInvalidConfig)

	// ErrTooFewPoints is returned when an operation receives fewer points than
	// it needs.
	ErrTooFewPoints = fmt.Errorf("%w: too few points", ErrInvalidConfig)

	// ErrInvalidPoints is returned for NaN or infinite coordinates.
	ErrInvalidPoints = fmt.Errorf("%w: points must have finite coordinates", ErrInvalidConfig)

	// ErrSingularSystem indicates the linear system has no unique solution.
	ErrSingularSystem = errors.New("linear system is not solvable")
)
