// Package mfdfaplot renders the three descriptor pairs the numeric packages
// produce — (α, f(α)), (q, τ(q)) and (q, h(q)) — as labelled line plots.
//
// The numeric core never imports the plotting stack: binaries that skip this
// package never link gonum/plot, which keeps the presentation dependency
// strictly at its point of use.
//
// ⚙️ Usage:
//
//	alpha, f, err := spectrum.SingularitySpectrum(lag, F, q, nil)
//	...
//	p, err := mfdfaplot.SingularitySpectrum(alpha, f)
//	if err != nil { ... }
//	_ = p.Save(12*vg.Centimeter, 8*vg.Centimeter, "spectrum.png")
//
// Errors:
//   - ErrLengthMismatch — the two slices differ in length
//   - ErrEmptyInput     — nothing to plot
package mfdfaplot
