package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scaling-descriptor extraction
//
// Description:
//
//	MFDFA produces a fluctuation function F_q(s): one value per window size
//	s (lag) and moment order q. On a log-log plot F_q(s) grows linearly in
//	s with slope h(q), the generalised Hurst exponent. From h(q) follow the
//	mass exponents τ(q) = q·h(q) − 1 and, through a discrete Legendre
//	transform, the singularity spectrum: α = dτ/dq, f(α) = q·α − τ.
//
// Pipeline outline:
//  1. Clean q: reject non-finite entries, drop |q| ≤ 0.1 (CleanQ).
//  2. Validate: lag shape, matrix dimensions against len(lag) and the
//     cleaned q, then the resolved fit range.
//  3. Per surviving moment order j, least-squares fit
//     ln F(s, q_j) ~ a + h_j·ln s over lags in [FitLo, FitHi).
//  4. τ_j = q_j·h_j − 1.
//  5. α_j = gradient(τ)_j / gradient(q)_j (central differences, one-sided
//     at the endpoints), f_j = q_j·α_j − τ_j.
//
// Interpretation:
//
//	Width(α) ≈ 0 means monofractal scaling; a wide α range means the signal
//	needs a distribution of exponents. These estimates rarely match the
//	theoretical expectation exactly; a variation of ±0.25 is reasonable.
//
// All operations are pure: no caching between calls, inputs read-only,
// outputs freshly allocated.

// HurstExponents computes the generalised Hurst exponents h(q): the slope of
// ln F against ln lag per surviving moment order, restricted to the fit
// range in opts (nil opts means defaults, see Options).
//
// It returns the cleaned moment orders actually used together with one slope
// per entry, in matching order. Always compare result lengths against the
// returned q, not the q passed in: cleaning may have shrunk it.
func HurstExponents(lag []int, fluct mat.Matrix, q []float64, opts *Options) (qc, h []float64, err error) {
	return slopes(lag, fluct, q, opts)
}

// ScalingExponents computes the mass/scaling exponents τ(q) = q·h(q) − 1
// over the cleaned moment orders. The returned q and τ always have equal
// length. A straight τ-vs-q line indicates monofractal data; curvature
// (usually around small q) indicates multifractality.
func ScalingExponents(lag []int, fluct mat.Matrix, q []float64, opts *Options) (qc, tau []float64, err error) {
	qc, h, err := slopes(lag, fluct, q, opts)
	if err != nil {
		return nil, nil, err
	}

	tau = make([]float64, len(qc))
	for i := range qc {
		tau[i] = qc[i]*h[i] - 1
	}

	return qc, tau, nil
}

// SingularitySpectrum computes the Legendre-transform pair (α, f(α)): the
// singularity strength α = dτ/dq via a central-difference gradient and the
// spectrum f(α) = q·α − τ, elementwise over the cleaned moment orders.
//
// Both results have the length of the cleaned q — not necessarily the length
// of the q passed in. The width max(α) − min(α) quantifies multifractality
// strength; the α at which f peaks should sit near 1 for a correctly
// normalised fluctuation function.
//
// Errors: everything ScalingExponents can return, plus ErrTooFewMoments when
// fewer than two moment orders survive cleaning (the gradient needs two).
func SingularitySpectrum(lag []int, fluct mat.Matrix, q []float64, opts *Options) (alpha, f []float64, err error) {
	qc, tau, err := ScalingExponents(lag, fluct, q, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(qc) < 2 {
		return nil, nil, ErrTooFewMoments
	}

	gTau := gradient(tau)
	gQ := gradient(qc)

	alpha = make([]float64, len(qc))
	f = make([]float64, len(qc))
	for i := range qc {
		alpha[i] = gTau[i] / gQ[i]
		f[i] = qc[i]*alpha[i] - tau[i]
	}

	return alpha, f, nil
}

// Width returns max(xs) − min(xs), the conventional multifractality-strength
// measure when applied to α (or to h(q)). Width of an empty slice is 0.
func Width(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return floats.Max(xs) - floats.Min(xs)
}

// slopes is the shared leaf of every public operation: it cleans q,
// validates shapes and the fit range, then fits one ln-ln regression line
// per surviving moment order and returns the slopes.
func slopes(lag []int, fluct mat.Matrix, q []float64, opts *Options) (qc, h []float64, err error) {
	if err = ValidateLag(lag); err != nil {
		return nil, nil, err
	}
	if qc, err = CleanQ(q); err != nil {
		return nil, nil, err
	}
	if err = ValidateShape(fluct, len(lag), len(qc)); err != nil {
		return nil, nil, err
	}

	// Resolve fit limits: negative means default. The first lag point is
	// discarded and only the lower half of the lag range is used.
	lo, hi := 1, len(lag)/2
	if opts != nil {
		if opts.FitLo >= 0 {
			lo = opts.FitLo
		}
		if opts.FitHi >= 0 {
			hi = opts.FitHi
		}
	}
	if err = ValidateFitRange(lo, hi, len(lag)); err != nil {
		return nil, nil, err
	}

	logLag := make([]float64, hi-lo)
	for i := lo; i < hi; i++ {
		logLag[i-lo] = math.Log(float64(lag[i]))
	}

	h = make([]float64, len(qc))
	logF := make([]float64, hi-lo)
	for j := range qc {
		for i := lo; i < hi; i++ {
			logF[i-lo] = math.Log(fluct.At(i, j))
		}
		// Ordinary (unweighted) least squares; the slope is h(q_j).
		_, h[j] = stat.LinearRegression(logLag, logF, nil, false)
	}

	return qc, h, nil
}

// gradient computes the standard second-order numerical gradient of y at
// unit spacing: central differences inside, one-sided differences at both
// endpoints. Callers guarantee len(y) >= 2.
func gradient(y []float64) []float64 {
	n := len(y)
	g := make([]float64, n)
	g[0] = y[1] - y[0]
	g[n-1] = y[n-1] - y[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (y[i+1] - y[i-1]) / 2
	}

	return g
}
