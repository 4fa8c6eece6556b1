// SPDX-License-Identifier: MIT
// Package spectrum: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// spectrum package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package spectrum

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spectrum: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// lag shape -> non-finite q -> nil matrix -> dimension mismatch
// -> fit range -> too few moments.

var (
	// ErrNonFiniteMoment is returned when a moment-order entry is NaN or ±Inf.
	// A non-finite exponent cannot be meaningfully cleaned or fit, so this
	// fails fast before any regression.
	ErrNonFiniteMoment = errors.New("spectrum: non-finite moment order")

	// ErrBadLag indicates the lag sequence is empty, contains a non-positive
	// window size, or is not strictly increasing.
	ErrBadLag = errors.New("spectrum: lags must be positive and strictly increasing")

	// ErrNilMatrix indicates that a nil fluctuation matrix was passed.
	ErrNilMatrix = errors.New("spectrum: nil fluctuation matrix")

	// ErrDimensionMismatch indicates the fluctuation matrix shape does not
	// agree with the lag count (rows) or the cleaned moment orders (columns).
	// A column mismatch signals the matrix was computed with a different set
	// of moment orders than the q passed here.
	ErrDimensionMismatch = errors.New("spectrum: fluctuation matrix and moment orders don't match in dimension")

	// ErrFitRange indicates the fit range selects fewer than two lags, or
	// lies outside the lag sequence; a line fit needs at least two points.
	ErrFitRange = errors.New("spectrum: fit range must select at least two lags")

	// ErrTooFewMoments indicates fewer than two moment orders survived
	// cleaning, which makes the numerical gradient over q undefined.
	ErrTooFewMoments = errors.New("spectrum: need at least two moment orders after cleaning")
)
