package fluct

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/multifract/mfdfa/spectrum"
)

var (
	// ErrBadOrder indicates a negative detrending order.
	ErrBadOrder = errors.New("fluct: detrending order must be non-negative")

	// ErrWindowTooSmall indicates the smallest lag cannot host a polynomial
	// of the requested order with at least one degree of freedom left
	// (every window size must be at least order+2).
	ErrWindowTooSmall = errors.New("fluct: window must exceed the detrending order by at least two")

	// ErrShortSeries indicates the series is shorter than the largest lag,
	// so at least one window size fits no segment at all.
	ErrShortSeries = errors.New("fluct: series shorter than the largest window")

	// ErrNoMoments indicates that no moment order survived the |q| ≤ 0.1
	// cut, leaving nothing to average.
	ErrNoMoments = errors.New("fluct: no moment orders survive cleaning")
)

// Fluctuations computes the MFDFA fluctuation matrix for the series x: one
// row per lag (window size), one column per surviving moment order, where
//
//	F_q(s) = ( mean over segments of F²(s, v)^(q/2) )^(1/q)
//
// and F²(s, v) is the mean squared residual of profile segment v against its
// least-squares polynomial trend of the given order (0 = constant,
// 1 = linear, ...).
//
// The moment orders are cleaned with spectrum.CleanQ first, so the column
// count equals the cleaned q's length — exactly what the spectrum package
// validates against when handed the same raw q.
func Fluctuations(x []float64, lag []int, q []float64, order int) (*mat.Dense, error) {
	if order < 0 {
		return nil, ErrBadOrder
	}
	if err := spectrum.ValidateLag(lag); err != nil {
		return nil, err
	}
	qc, err := spectrum.CleanQ(q)
	if err != nil {
		return nil, err
	}
	if len(qc) == 0 {
		return nil, ErrNoMoments
	}

	n := len(x)
	if n < lag[len(lag)-1] {
		return nil, ErrShortSeries
	}
	if lag[0] < order+2 {
		return nil, ErrWindowTooSmall
	}

	// Profile: cumulative sum of the mean-subtracted series.
	mean := stat.Mean(x, nil)
	y := make([]float64, n)
	acc := 0.0
	for i, v := range x {
		acc += v - mean
		y[i] = acc
	}

	out := mat.NewDense(len(lag), len(qc), nil)
	f2 := make([]float64, 0, 2*(n/lag[0]))

	for si, s := range lag {
		segs := n / s
		d := newDetrender(s, order)

		// Forward segments, then the same number anchored at the tail, so
		// the trailing remainder of the profile is not ignored.
		f2 = f2[:0]
		for v := 0; v < segs; v++ {
			ms, err := d.residualMS(y[v*s : (v+1)*s])
			if err != nil {
				return nil, err
			}
			f2 = append(f2, ms)
		}
		for v := 0; v < segs; v++ {
			ms, err := d.residualMS(y[n-(v+1)*s : n-v*s])
			if err != nil {
				return nil, err
			}
			f2 = append(f2, ms)
		}

		for j, qv := range qc {
			out.Set(si, j, fluctuation(f2, qv))
		}
	}

	return out, nil
}

// fluctuation is the q-th order average of the squared segment residuals.
// Near-zero q is excluded upstream, so the 1/q exponent is always defined.
func fluctuation(f2 []float64, q float64) float64 {
	sum := 0.0
	for _, v := range f2 {
		sum += math.Pow(v, q/2)
	}

	return math.Pow(sum/float64(len(f2)), 1/q)
}

// detrender solves least-squares polynomial fits over windows of a fixed
// size. The Vandermonde basis over the local sample index 0..s-1 is shared
// by every segment of that size, so it is factorized exactly once.
type detrender struct {
	v    *mat.Dense // s×(order+1) Vandermonde basis
	qr   mat.QR
	coef mat.Dense // (order+1)×1 solution, reused across segments
	pred mat.Dense // s×1 fitted trend, reused across segments
}

func newDetrender(s, order int) *detrender {
	d := &detrender{v: mat.NewDense(s, order+1, nil)}
	for i := 0; i < s; i++ {
		p := 1.0
		for c := 0; c <= order; c++ {
			d.v.Set(i, c, p)
			p *= float64(i)
		}
	}
	d.qr.Factorize(d.v)

	return d
}

// residualMS returns the mean squared residual of seg against its
// least-squares polynomial trend.
func (d *detrender) residualMS(seg []float64) (float64, error) {
	b := mat.NewVecDense(len(seg), seg)
	if err := d.qr.SolveTo(&d.coef, false, b); err != nil {
		return 0, err
	}
	d.pred.Mul(d.v, &d.coef)

	ms := 0.0
	for i, v := range seg {
		r := v - d.pred.At(i, 0)
		ms += r * r
	}

	return ms / float64(len(seg)), nil
}
