// Package fluct computes the MFDFA fluctuation function F_q(s): the input
// every descriptor in spectrum consumes.
//
// 🚀 What is MFDFA?
//
//	Multifractal Detrended Fluctuation Analysis (Kantelhardt et al., 2002)
//	quantifies how the fluctuations of a series scale with observation
//	window size s, separately for each moment order q:
//	  1. Integrate the mean-subtracted series into a profile.
//	  2. Split the profile into ⌊N/s⌋ windows from the front and the same
//	     number anchored at the tail, so no samples are discarded.
//	  3. Detrend every window with a least-squares polynomial of the chosen
//	     order and take the mean squared residual.
//	  4. Average the residuals under the q-th moment:
//	     F_q(s) = ( mean F²(s,·)^(q/2) )^(1/q).
//
// ✨ Key behaviors:
//   - moment orders are cleaned exactly like spectrum.CleanQ does, so the
//     resulting matrix always passes spectrum's dimension checks when both
//     ends receive the same raw q
//   - detrending uses a QR least-squares solve against a Vandermonde basis,
//     factorized once per window size and reused across segments
//   - pure function: input series, lags and q are read-only
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/multifract/mfdfa/fluct"
//	  "github.com/multifract/mfdfa/spectrum"
//	)
//
//	F, err := fluct.Fluctuations(x, lag, q, 1) // linear detrending
//	if err != nil { ... }
//	alpha, f, err := spectrum.SingularitySpectrum(lag, F, q, nil)
//
// Errors:
//   - ErrBadOrder       — negative detrending order
//   - ErrWindowTooSmall — smallest lag leaves no degrees of freedom
//   - ErrShortSeries    — series shorter than the largest lag
//   - ErrNoMoments      — every moment order fell inside the |q| ≤ 0.1 cut
//   - spectrum.ErrBadLag / spectrum.ErrNonFiniteMoment — propagated from the
//     shared input validation
//
// Performance: O(Σ_s N·order²) time, O(max(s)·order) memory.
package fluct
