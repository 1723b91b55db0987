package main

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	interpolation "github.com/tphakala/go-interpolation"
)

// report is the result of a job, shared by the text and YAML writers.
type report struct {
	Mode        string            `yaml:"mode"`
	Points      int               `yaml:"points"`
	Center      float64           `yaml:"center,omitempty"`
	Polynomials []polynomialEntry `yaml:"polynomials"`
	Residuals   *residualEntry    `yaml:"residuals,omitempty"`
	Samples     []sampleEntry     `yaml:"samples,omitempty"`
}

type polynomialEntry struct {
	XMin         float64   `yaml:"x_min"`
	XMax         float64   `yaml:"x_max"`
	Coefficients []float64 `yaml:"coefficients"`
	Expression   string    `yaml:"expression"`
}

type residualEntry struct {
	SumOfSquares float64 `yaml:"sum_of_squares"`
	Mean         float64 `yaml:"mean"`
	Median       float64 `yaml:"median"`
	StdDev       float64 `yaml:"std_dev"`
	MaxAbs       float64 `yaml:"max_abs"`
	RMS          float64 `yaml:"rms"`
}

type sampleEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func newResidualEntry(st interpolation.ResidualStats) *residualEntry {
	return &residualEntry{
		SumOfSquares: st.SumOfSquares,
		Mean:         st.Mean,
		Median:       st.Median,
		StdDev:       st.StdDev,
		MaxAbs:       st.MaxAbs,
		RMS:          st.RMS,
	}
}

// sampleGrid evaluates f at n evenly spaced x in [xMin, xMax].
func sampleGrid(f func(float64) float64, xMin, xMax float64, n int) []sampleEntry {
	if n < minTableSamples {
		return nil
	}

	xs := floats.Span(make([]float64, n), xMin, xMax)
	samples := make([]sampleEntry, n)
	for i, x := range xs {
		samples[i] = sampleEntry{X: x, Y: f(x)}
	}
	return samples
}

func writeReport(w io.Writer, r *report, format string) error {
	switch format {
	case formatYAML:
		return writeYAML(w, r)
	case formatText:
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

func writeYAML(w io.Writer, r *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, r *report) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("Mode: %s (%d points)\n", r.Mode, r.Points)
	for i, p := range r.Polynomials {
		if len(r.Polynomials) == 1 {
			printf("  p(x) = %s\n", p.Expression)
			continue
		}
		printf("  [%g, %g] p%d(x) = %s\n", p.XMin, p.XMax, i, p.Expression)
	}

	if res := r.Residuals; res != nil {
		printf("Residuals:\n")
		printf("  Sum of squares: %.6g\n", res.SumOfSquares)
		printf("  Mean: %.6g, Median: %.6g, StdDev: %.6g\n", res.Mean, res.Median, res.StdDev)
		printf("  Max |r|: %.6g, RMS: %.6g\n", res.MaxAbs, res.RMS)
	}

	if len(r.Samples) > 0 {
		printf("Samples:\n")
		for _, s := range r.Samples {
			printf("  %12.6g %12.6g\n", s.X, s.Y)
		}
	}

	return err
}
