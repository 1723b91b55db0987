package interpolation

import (
	"cmp"
	"slices"

	"github.com/tphakala/go-interpolation/internal/mathutil"
)

// Common sample rates for the resampling helpers.
const (
	// RateCD is the CD quality sample rate.
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the 2x DAT sample rate.
	RateHiRes96 = 96000
)

// WitchOfAgnesi evaluates the Witch of Agnesi 8a³/(x² + 4a²) with radius a.
// Its flat tails and sharp peak make it a standard stress test for
// high-degree interpolation.
func WitchOfAgnesi(x, radius float64) float64 {
	return mathutil.WitchOfAgnesi(x, radius)
}

// WitchOfAgnesiPoints samples the Witch of Agnesi at x = start, start+spacing,
// ... up to and including end. A spacing <= 0 means 1 and a radius <= 0
// means 1.
func WitchOfAgnesiPoints(start, end, spacing int, radius float64) []Point {
	if spacing <= 0 {
		spacing = defaultAgnesiSpacing
	}
	if radius <= 0 {
		radius = defaultAgnesiRadius
	}

	var points []Point
	for x := start; x < end+spacing; x += spacing {
		fx := float64(x)
		points = append(points, Point{X: fx, Y: mathutil.WitchOfAgnesi(fx, radius)})
	}
	return points
}

// SortByX returns a copy of points sorted by ascending x. Points with equal
// x keep their relative order.
func SortByX(points []Point) []Point {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return sorted
}

// ResampleMono resamples a mono signal in one call.
func ResampleMono(input []float64, inputRate, outputRate float64, method Method) ([]float64, error) {
	r, err := New(&Config{
		InputRate:  inputRate,
		OutputRate: outputRate,
		Channels:   1,
		Method:     method,
	})
	if err != nil {
		return nil, err
	}
	return r.Process(input)
}

// ResampleStereo resamples both channels of a stereo signal in parallel.
func ResampleStereo(left, right []float64, inputRate, outputRate float64, method Method) (leftOut, rightOut []float64, err error) {
	r, err := New(&Config{
		InputRate:      inputRate,
		OutputRate:     outputRate,
		Channels:       2,
		Method:         method,
		EnableParallel: true,
	})
	if err != nil {
		return nil, nil, err
	}

	out, err := r.ProcessMulti([][]float64{left, right})
	if err != nil {
		return nil, nil, err
	}
	return out[0], out[1], nil
}
