package engine

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SolveSquare solves a·x = b for a square a using LU decomposition with
// partial pivoting.
//
// A zero pivot is reported as ErrSingularSystem wrapping mat.ErrSingular.
// A condition number above mat.ConditionTolerance is only a warning from
// gonum; the computed solution is returned and the warning is dropped.
func SolveSquare(a *mat.Dense, b *mat.VecDense) ([]float64, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: coefficient matrix is %dx%d, want square", ErrInvalidConfig, rows, cols)
	}
	if b.Len() != rows {
		return nil, fmt.Errorf("%w: value vector has %d entries, want %d", ErrInvalidConfig, b.Len(), rows)
	}

	var lu mat.LU
	lu.Factorize(a)

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		var cond mat.Condition
		switch {
		case errors.Is(err, mat.ErrSingular):
			return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
		case !errors.As(err, &cond):
			return nil, err
		}
	}

	return mat.Col(nil, 0, &x), nil
}

// NormalEquations returns (aᵀa, aᵀb), the square system whose solution
// minimizes |a·x - b|².
func NormalEquations(a *mat.Dense, b *mat.VecDense) (*mat.Dense, *mat.VecDense) {
	var ata mat.Dense
	ata.Mul(a.T(), a)

	var atb mat.VecDense
	atb.MulVec(a.T(), b)

	return &ata, &atb
}
