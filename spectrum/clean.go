package spectrum

import "math"

// qCut is the half-width of the excluded neighbourhood around q = 0. The
// q-weighted average underlying the fluctuation function degenerates into a
// limiting geometric-mean case as q → 0 and does not converge, so columns
// fitted there would fit noise.
const qCut = 0.1

// CleanQ sanitises a moment-order sequence before any fitting: it rejects
// non-finite entries and drops every value v unless v < -0.1 or v > 0.1,
// preserving the relative order of the remainder.
//
// The result is a fresh slice; the input is never modified. CleanQ is
// idempotent and never fails solely because the result is empty — consumers
// that need at least two moments (the gradient step) check length themselves.
//
// Errors:
//   - ErrNonFiniteMoment — any entry is NaN or ±Inf.
func CleanQ(q []float64) ([]float64, error) {
	out := make([]float64, 0, len(q))
	for _, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFiniteMoment
		}
		if v < -qCut || v > qCut {
			out = append(out, v)
		}
	}

	return out, nil
}
