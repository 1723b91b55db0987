package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	interpolation "github.com/tphakala/go-interpolation"
)

// curve is one function drawn over [xMin, xMax].
type curve struct {
	f          func(float64) float64
	xMin, xMax float64
}

// savePlot draws the points and curves and saves the image. The format
// follows the file extension (png, svg, pdf, ...).
func savePlot(path, title string, points []interpolation.Point, curves []curve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, c := range curves {
		fn := plotter.NewFunction(c.f)
		fn.XMin = c.xMin
		fn.XMax = c.xMax
		fn.Samples = plotSamples
		fn.Color = plotutil.Color(i)
		p.Add(fn)
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("failed to plot points: %w", err)
	}
	p.Add(scatter)
	p.Legend.Add("points", scatter)

	if err := p.Save(plotWidthInches*vg.Inch, plotHeightInches*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
