package mfdfaplot

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrLengthMismatch indicates the abscissa and ordinate slices differ
	// in length; descriptor pairs are always equal-length by contract.
	ErrLengthMismatch = errors.New("mfdfaplot: series must have equal length")

	// ErrEmptyInput indicates there is nothing to plot.
	ErrEmptyInput = errors.New("mfdfaplot: empty series")
)

// SingularitySpectrum plots the singularity spectrum f(α) against the
// singularity strength α.
func SingularitySpectrum(alpha, f []float64) (*plot.Plot, error) {
	return linePlot(alpha, f, "α", "f(α)")
}

// ScalingExponents plots the scaling exponents τ(q), conventionally with q
// in the abscissa.
func ScalingExponents(q, tau []float64) (*plot.Plot, error) {
	return linePlot(q, tau, "q", "τ(q)")
}

// HurstExponents plots the generalised Hurst exponents h(q) against q.
func HurstExponents(q, h []float64) (*plot.Plot, error) {
	return linePlot(q, h, "q", "h(q)")
}

// linePlot builds a single black line over (xs, ys) with the given axis
// labels.
func linePlot(xs, ys []float64, xLabel, yLabel string) (*plot.Plot, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(line)

	return p, nil
}
