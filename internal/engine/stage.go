// Package engine implements the linear-system and spline kernels behind the
// interpolation API, plus a spline-based resampling stage.
package engine

import (
	"fmt"
	"math"
)

// Method selects the spline used by SplineStage.
type Method int

const (
	// MethodLinear joins consecutive samples with straight lines.
	MethodLinear Method = iota

	// MethodCubic uses natural cubic splines solved per three-sample window.
	MethodCubic
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// SplineStage resamples a uniformly sampled signal by treating sample i as
// the point (i, input[i]) and evaluating a spline through those points at a
// step of 1/ratio.
//
// Every call to Process is independent: no samples are carried between
// blocks, so splitting a signal into blocks changes the output at block
// boundaries.
type SplineStage struct {
	ratio  float64
	method Method
}

// NewSplineStage creates a spline resampling stage.
func NewSplineStage(ratio float64, method Method) (*SplineStage, error) {
	if math.IsNaN(ratio) || ratio < minRatio || ratio > maxRatio {
		return nil, fmt.Errorf("%w: resampling ratio %v out of range (%v to %v)",
			ErrInvalidConfig, ratio, minRatio, maxRatio)
	}
	if method != MethodLinear && method != MethodCubic {
		return nil, fmt.Errorf("%w: unknown spline method %v", ErrInvalidConfig, method)
	}

	return &SplineStage{ratio: ratio, method: method}, nil
}

// Process resamples one block of input.
func (s *SplineStage) Process(input []float64) ([]float64, error) {
	switch len(input) {
	case 0:
		return []float64{}, nil
	case 1:
		return []float64{input[0]}, nil
	}

	pieces, err := s.buildPieces(input)
	if err != nil {
		return nil, err
	}

	last := float64(len(input) - 1)
	output := make([]float64, s.OutputLength(len(input)))

	// Output positions only increase, so walk the pieces forward instead of
	// searching for each sample.
	piece := 0
	step := 1.0 / s.ratio
	for k := range output {
		x := math.Min(float64(k)*step, last)
		for piece < len(pieces)-1 && x > pieces[piece].XMax {
			piece++
		}
		output[k] = pieces[piece].Eval(x)
	}

	return output, nil
}

// OutputLength returns the number of samples Process produces for n input
// samples: one per output position in [0, n-1].
func (s *SplineStage) OutputLength(n int) int {
	if n <= 1 {
		return n
	}
	return int(math.Floor(float64(n-1)*s.ratio+positionEpsilon)) + 1
}

// buildPieces fits the configured spline through the block.
//
// Each window is solved in local coordinates (0, 1, 2) and shifted back with
// Piece.Offset. Absolute sample indices would make the cubic systems badly
// conditioned for long blocks. Blocks too short for a cubic window, and the
// final interval of an even-length block, use straight lines.
func (s *SplineStage) buildPieces(input []float64) ([]Piece, error) {
	n := len(input)
	pieces := make([]Piece, 0, n-1)

	covered := 0
	if s.method == MethodCubic {
		local := []float64{0, 1, 2}
		for i := 0; i+triplePoints <= n; i += tripleStride {
			pair, err := ThreePointCubic(local, input[i:i+triplePoints])
			if err != nil {
				return nil, fmt.Errorf("cubic window at sample %d: %w", i, err)
			}
			origin := float64(i)
			pieces = append(pieces,
				Piece{Coeffs: pair[0], XMin: origin, XMax: origin + 1, Offset: origin},
				Piece{Coeffs: pair[1], XMin: origin + 1, XMax: origin + 2, Offset: origin},
			)
			covered = i + tripleStride
		}
	}

	local := []float64{0, 1}
	for i := covered; i+1 < n; i++ {
		coeffs, _, err := Fit(local, input[i:i+linearSplinePoints], FitParams{Degree: linearSplineDegree})
		if err != nil {
			return nil, fmt.Errorf("linear piece at sample %d: %w", i, err)
		}
		origin := float64(i)
		pieces = append(pieces, Piece{Coeffs: coeffs, XMin: origin, XMax: origin + 1, Offset: origin})
	}

	return pieces, nil
}

// GetRatio returns the stage's resampling ratio.
func (s *SplineStage) GetRatio() float64 {
	return s.ratio
}

// GetMethod returns the spline method in use.
func (s *SplineStage) GetMethod() Method {
	return s.method
}
