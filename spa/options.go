// SPDX-License-Identifier: MIT
// Package: ldpc/spa
//
// options.go — functional options for Decode, grounded on the dijkstra
// package's Option/DefaultOptions pair.

package spa

// Options configures the behavior of Decode.
//
// EpsilonLo, EpsilonHi – bounds the magnitude of intermediate phi-function
// inputs/outputs to avoid +-Inf messages from saturated LLRs. Must satisfy
// 0 < EpsilonLo < EpsilonHi. Defaults reproduce the spec's phi clamp
// exactly (1e-7, 30).
//
// StopOnSyndrome – if true (default), Decode returns as soon as a tentative
// decision satisfies h * xhat^T == 0, without running the remaining
// iterations. If false, Decode always runs exactly maxIter iterations.
type Options struct {
	EpsilonLo      float64
	EpsilonHi      float64
	StopOnSyndrome bool
}

// Option represents a functional option for configuring Decode.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults
// that reproduce the spec's SPA decoder exactly: StopOnSyndrome enabled,
// epsilon clamp bounds (1e-7, 30).
func DefaultOptions() Options {
	return Options{
		EpsilonLo:      defaultEpsilonLo,
		EpsilonHi:      defaultEpsilonHi,
		StopOnSyndrome: true,
	}
}

// WithEpsilonClamp overrides the phi-function clamp bounds. lo must be
// strictly positive and strictly less than hi; otherwise Decode returns
// ErrBadEpsilonClamp.
func WithEpsilonClamp(lo, hi float64) Option {
	return func(o *Options) {
		o.EpsilonLo = lo
		o.EpsilonHi = hi
	}
}

// WithStopOnSyndrome controls whether Decode returns early once a tentative
// decision validates against the syndrome check. Default is true.
func WithStopOnSyndrome(stop bool) Option {
	return func(o *Options) {
		o.StopOnSyndrome = stop
	}
}
