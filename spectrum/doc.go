// Package spectrum derives multifractal scaling descriptors from an MFDFA
// fluctuation matrix: generalised Hurst exponents h(q), scaling exponents
// τ(q), and the singularity spectrum (α, f(α)).
//
// 🚀 What does spectrum compute?
//
//	Given the window sizes (lags), the fluctuation matrix F_q(s) and the
//	moment orders q used to produce it:
//	  • h(q) — the least-squares slope of ln F against ln s, per moment order
//	  • τ(q) = q·h(q) − 1 — the mass/scaling exponents
//	  • α = dτ/dq and f(α) = q·α − τ — the Legendre-transform pair
//
// ✨ Key behaviors:
//   - moment orders are cleaned first: |q| ≤ 0.1 is dropped (the q-weighted
//     average does not converge near zero), non-finite q is rejected
//   - every operation returns the cleaned q it actually used — compare
//     output lengths against that, never against the q you passed in
//   - log-log fits default to the half-open lag range [1, len(lag)/2):
//     the first lag is unreliable, the largest lags have too few segments
//   - pure functions: inputs are read-only, results freshly allocated,
//     repeated calls recompute from scratch
//
// ⚙️ Usage:
//
//	import "github.com/multifract/mfdfa/spectrum"
//
//	qc, h, err := spectrum.HurstExponents(lag, fluct, q, nil)
//	qc, tau, err := spectrum.ScalingExponents(lag, fluct, q, nil)
//	alpha, f, err := spectrum.SingularitySpectrum(lag, fluct, q, nil)
//
//	// Width(alpha) ≈ 0 ⇒ monofractal; wide ⇒ multifractal.
//	strength := spectrum.Width(alpha)
//
// Errors:
//   - ErrNonFiniteMoment    — a moment order is NaN or ±Inf
//   - ErrBadLag             — lags not positive and strictly increasing
//   - ErrNilMatrix          — nil fluctuation matrix
//   - ErrDimensionMismatch  — matrix shape vs lag count / cleaned q count
//   - ErrFitRange           — fit range selects fewer than two lags
//   - ErrTooFewMoments      — fewer than two moments survive cleaning
//
// Performance: O(M·R) per call for M surviving moments and R lags in the
// fit range; memory O(M + R).
//
// See example_test.go for a full monofractal walkthrough.
package spectrum
