// Command interp fits polynomials and splines through points given on the
// command line or in a job file.
//
// Usage:
//
//	interp -points "2,3.2;4,2;6,1.23"                    # Exact interpolation
//	interp -points "..." -degree 1 -lsq                  # Line of best fit
//	interp -points "..." -center 1570                    # Centered fit
//	interp -mode cubic -points "..." -plot spline.png    # Cubic spline with plot
//	interp -config job.gcfg -format yaml                 # Job file, YAML output
//
// Flags given explicitly override values from the job file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	interpolation "github.com/tphakala/go-interpolation"
)

var errNoPoints = errors.New("no points given (use -points or -config)")

// options holds the parsed command line.
type options struct {
	configPath string
	mode       string
	points     string
	degree     int
	lsq        bool
	center     float64
	format     string
	plotPath   string
	samples    int
	verbose    bool
	example    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("interp", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Job file in gcfg format (see -example)")
	fs.StringVar(&opts.mode, "mode", modeFit, "Mode: fit, linear, cubic")
	fs.StringVar(&opts.points, "points", "", "Points as \"x,y;x,y;...\"")
	fs.IntVar(&opts.degree, "degree", interpolation.DegreeAuto, "Polynomial degree (-1 for len(points)-1)")
	fs.BoolVar(&opts.lsq, "lsq", false, "Allow a least-squares fit below full degree")
	fs.Float64Var(&opts.center, "center", 0, "Center subtracted from x before fitting")
	fs.StringVar(&opts.format, "format", formatText, "Output format: text, yaml")
	fs.StringVar(&opts.plotPath, "plot", "", "Save a plot to this file (png, svg, pdf)")
	fs.IntVar(&opts.samples, "samples", defaultSamples, "Print the result at this many evenly spaced x")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.BoolVar(&opts.example, "example", false, "Print an example job file and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.example {
		_, err := fmt.Fprintln(stdout, exampleJobFile)
		return err
	}

	j, err := buildJob(fs, &opts)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.Printf("Mode: %s", j.mode)
		log.Printf("Points: %d", len(j.points))
		if j.mode == modeFit {
			log.Printf("Degree: %d, least squares: %v, center: %g", j.fit.Degree, j.fit.LeastSquares, j.fit.Center)
		}
	}

	r, curves, err := execute(j, opts.samples)
	if err != nil {
		return err
	}

	if opts.plotPath != "" {
		if err := savePlot(opts.plotPath, j.mode, j.points, curves); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("Plot: %s", opts.plotPath)
		}
	}

	return writeReport(stdout, r, opts.format)
}

// buildJob merges the job file, if any, with explicitly set flags.
func buildJob(fs *flag.FlagSet, opts *options) (*job, error) {
	j := &job{mode: modeFit, fit: interpolation.DefaultFitConfig()}
	if opts.configPath != "" {
		var err error
		if j, err = readJobFile(opts.configPath); err != nil {
			return nil, err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "mode":
			j.mode, err = parseMode(opts.mode)
		case "points":
			j.points, err = parsePoints(opts.points)
		case "degree":
			j.fit.Degree = opts.degree
		case "lsq":
			j.fit.LeastSquares = opts.lsq
		case "center":
			j.fit.Center = opts.center
		}
	})
	if err != nil {
		return nil, err
	}

	if len(j.points) == 0 {
		return nil, errNoPoints
	}
	return j, nil
}

// execute runs the job and returns the report and the curves to plot.
func execute(j *job, samples int) (*report, []curve, error) {
	switch j.mode {
	case modeFit:
		return executeFit(j, samples)
	case modeLinear, modeCubic:
		return executeSpline(j, samples)
	default:
		return nil, nil, fmt.Errorf("unknown mode %q", j.mode)
	}
}

func executeFit(j *job, samples int) (*report, []curve, error) {
	coeffs, err := interpolation.Fit(j.points, &j.fit)
	if err != nil {
		return nil, nil, err
	}

	poly := interpolation.CenteredPolynomial{Coefficients: coeffs, Center: j.fit.Center}
	st, err := interpolation.AnalyzeResiduals(j.points, poly)
	if err != nil {
		return nil, nil, err
	}

	sorted := interpolation.SortByX(j.points)
	xMin, xMax := sorted[0].X, sorted[len(sorted)-1].X

	r := &report{
		Mode:   j.mode,
		Points: len(j.points),
		Center: j.fit.Center,
		Polynomials: []polynomialEntry{{
			XMin:         xMin,
			XMax:         xMax,
			Coefficients: coeffs,
			Expression:   poly.Expression(expressionVar),
		}},
		Residuals: newResidualEntry(st),
		Samples:   sampleGrid(poly.Func(), xMin, xMax, samples),
	}

	c := interpolation.CoefficientsToFunction(coeffs, j.fit.Center)
	plotted := func(x float64) float64 { return c(x)[1] }

	return r, []curve{{f: plotted, xMin: xMin, xMax: xMax}}, nil
}

func executeSpline(j *job, samples int) (*report, []curve, error) {
	points := interpolation.SortByX(j.points)

	var (
		s   *interpolation.Spline
		err error
	)
	if j.mode == modeLinear {
		s, err = interpolation.NewLinearSpline(points)
	} else {
		s, err = interpolation.NewCubicSpline(points)
	}
	if err != nil {
		return nil, nil, err
	}

	// Piece i spans points i and i+1 for both spline types.
	pieces := s.Pieces()
	entries := make([]polynomialEntry, len(pieces))
	curves := make([]curve, len(pieces))
	for i, p := range pieces {
		entries[i] = polynomialEntry{
			XMin:         points[i].X,
			XMax:         points[i+1].X,
			Coefficients: p,
			Expression:   interpolation.CenteredPolynomial{Coefficients: p}.Expression(expressionVar),
		}
		curves[i] = curve{f: p.Eval, xMin: points[i].X, xMax: points[i+1].X}
	}

	xMin, xMax := s.Domain()
	return &report{
		Mode:        j.mode,
		Points:      len(points),
		Polynomials: entries,
		Samples:     sampleGrid(s.Eval, xMin, xMax, samples),
	}, curves, nil
}
