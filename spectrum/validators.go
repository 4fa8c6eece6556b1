// SPDX-License-Identifier: MIT
// Package: spectrum
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep the fitting kernels minimal by delegating shape/range checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites stay
//    uniform and tests can still match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateLag runs a single O(L) pass; the rest are O(1).

package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLag ensures the window-size sequence is non-empty, positive and
// strictly increasing — the shape every upstream MFDFA computation produces.
//
// Returns ErrBadLag on any violation. Complexity: O(L).
func ValidateLag(lag []int) error {
	if len(lag) == 0 {
		return validatorErrorf("ValidateLag: empty", ErrBadLag)
	}
	if lag[0] <= 0 {
		return validatorErrorf("ValidateLag: non-positive", ErrBadLag)
	}
	for i := 1; i < len(lag); i++ {
		if lag[i] <= lag[i-1] {
			return validatorErrorf("ValidateLag: not strictly increasing", ErrBadLag)
		}
	}

	return nil
}

// ValidateShape ensures the fluctuation matrix is non-nil and has exactly
// rows×cols dimensions (rows = lag count, cols = cleaned moment count).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch on any shape violation.
// Complexity: O(1).
func ValidateShape(fluct mat.Matrix, rows, cols int) error {
	if fluct == nil {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	r, c := fluct.Dims()
	if r != rows {
		return validatorErrorf("ValidateShape: rows", ErrDimensionMismatch)
	}
	if c != cols {
		return validatorErrorf("ValidateShape: columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFitRange ensures the half-open index range [lo, hi) lies inside a
// lag sequence of the given size and selects at least two points, the
// minimum for a meaningful line fit.
//
// Returns ErrFitRange on any violation. Complexity: O(1).
func ValidateFitRange(lo, hi, size int) error {
	if lo < 0 || hi > size {
		return validatorErrorf("ValidateFitRange: out of bounds", ErrFitRange)
	}
	if hi-lo < 2 {
		return validatorErrorf("ValidateFitRange: fewer than two points", ErrFitRange)
	}

	return nil
}
