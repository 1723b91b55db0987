package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	interpolation "github.com/tphakala/go-interpolation"
)

// exampleJobFile documents the job file format accepted by -config.
const exampleJobFile = `[Fit]

# One of fit, linear or cubic.
Mode = fit

# Polynomial degree for Mode = fit. -1 interpolates every point.
Degree = -1

# Required when Degree is below the number of points minus one.
LeastSquares = false

# Subtracted from x before fitting. Useful for data far from zero.
Center = 0

# One "x, y" pair per line. Spline modes sort the points by x.
Point = 2, 3.2
Point = 4, 2
Point = 6, 1.2307692307692308`

// jobConfig is the [Fit] section of a job file.
type jobConfig struct {
	Mode         string
	Degree       int
	LeastSquares bool
	Center       float64
	Point        []string
}

type jobWrapper struct {
	Fit jobConfig
}

func defaultJobWrapper() *jobWrapper {
	return &jobWrapper{jobConfig{
		Mode:   modeFit,
		Degree: interpolation.DegreeAuto,
	}}
}

// job is a fully parsed request.
type job struct {
	mode   string
	points []interpolation.Point
	fit    interpolation.FitConfig
}

// readJobFile reads and validates a gcfg job file.
func readJobFile(path string) (*job, error) {
	wrap := defaultJobWrapper()
	if err := gcfg.ReadFileInto(wrap, path); err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return wrap.Fit.job()
}

func (con *jobConfig) job() (*job, error) {
	mode, err := parseMode(con.Mode)
	if err != nil {
		return nil, err
	}

	points := make([]interpolation.Point, 0, len(con.Point))
	for i, s := range con.Point {
		p, err := parsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}

	return &job{
		mode:   mode,
		points: points,
		fit: interpolation.FitConfig{
			Degree:       con.Degree,
			LeastSquares: con.LeastSquares,
			Center:       con.Center,
		},
	}, nil
}

func parseMode(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case modeFit, modeLinear, modeCubic:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want fit, linear or cubic)", s)
	}
}

// parsePoints parses "x,y;x,y;...". Empty entries are skipped.
func parsePoints(s string) ([]interpolation.Point, error) {
	var points []interpolation.Point
	for i, field := range strings.Split(s, pointSeparator) {
		if strings.TrimSpace(field) == "" {
			continue
		}
		p, err := parsePoint(field)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// parsePoint parses a single "x,y" pair.
func parsePoint(s string) (interpolation.Point, error) {
	parts := strings.Split(s, coordinateSeparator)
	if len(parts) != coordinatesPerPoint {
		return interpolation.Point{}, fmt.Errorf("want \"x,y\", got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return interpolation.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return interpolation.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}

	return interpolation.Point{X: x, Y: y}, nil
}
