package interpolation

import (
	"github.com/tphakala/go-interpolation/internal/engine"
)

// Errors returned by the package. Match them with errors.Is.
var (
	// ErrInvalidConfig indicates invalid options or input shape. It is
	// reported before any linear algebra runs. ErrLeastSquaresRequired,
	// ErrTooFewPoints and ErrInvalidPoints all wrap it.
	ErrInvalidConfig = engine.ErrInvalidConfig

	// ErrLeastSquaresRequired indicates a degree below len(points)-1 without
	// FitConfig.LeastSquares.
	ErrLeastSquaresRequired = engine.ErrLeastSquaresRequired

	// ErrTooFewPoints indicates fewer points than the operation needs.
	ErrTooFewPoints = engine.ErrTooFewPoints

	// ErrInvalidPoints indicates a NaN or infinite coordinate.
	ErrInvalidPoints = engine.ErrInvalidPoints

	// ErrSingularSystem indicates a linear system without a unique
	// solution. It wraps gonum's mat.ErrSingular.
	ErrSingularSystem = engine.ErrSingularSystem
)
