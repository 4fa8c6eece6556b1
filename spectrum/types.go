// Package spectrum defines options for the scaling-descriptor extraction.
package spectrum

// Options configures the log-log fitting stage shared by HurstExponents,
// ScalingExponents and SingularitySpectrum.
//
// Fields:
//   - FitLo — index into lag of the first window size used for fitting
//     (inclusive). Negative means "use the default", which is 1: the very
//     first lag point is discarded as unreliable.
//   - FitHi — index into lag one past the last window size used for fitting
//     (exclusive). Negative means "use the default", which is len(lag)/2:
//     large windows hold too few segments for a stable fluctuation average.
//
// The resolved range [FitLo, FitHi) must select at least two lags, otherwise
// the operations return ErrFitRange.
//
// Note that the zero value Options{} is NOT the default configuration: it
// names the empty range [0, 0) and always fails with ErrFitRange. Start from
// DefaultOptions() (or pass a nil *Options) and override individual fields.
//
// Example:
//
//	opts := spectrum.DefaultOptions()
//	opts.FitLo = 2 // skip the two smallest windows
//
//	qc, h, err := spectrum.HurstExponents(lag, fluct, q, &opts)
//	if err != nil {
//	  // handle ErrFitRange, ErrDimensionMismatch, ...
//	}
type Options struct {
	FitLo int
	FitHi int
}

// DefaultOptions returns the canonical configuration: both fit limits unset,
// so the fitting stage resolves them to [1, len(lag)/2). Passing a nil
// *Options to any operation is equivalent.
func DefaultOptions() Options {
	return Options{FitLo: -1, FitHi: -1}
}
