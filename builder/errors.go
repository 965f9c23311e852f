// SPDX-License-Identifier: MIT
// Package: ldpc/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context with %w at the call site.
//   - BuildH never panics at runtime; validation failures return errors.

package builder

import "errors"

// ErrInvalidDimensions indicates N is not divisible by wr, or M = N*wc/wr is
// not divisible by wc, or wc/wr are out of their required domains
// (wc >= 2, wr > wc).
var ErrInvalidDimensions = errors.New("builder: invalid dimensions")

// ErrNeedRandSource indicates BuildH was called with a nil *rand.Rand.
// Unlike the deterministic topologies a general-purpose graph builder might
// offer, a Gallager ensemble has no meaningful RNG-less fallback: the random
// column permutations are the construction.
var ErrNeedRandSource = errors.New("builder: rng is required")
