// SPDX-License-Identifier: MIT
// Package: ldpc/spa
//
// errors.go — sentinel errors for the spa package.

package spa

import "errors"

var (
	// ErrInvalidDimensions indicates llr, h, m, n or k are mutually inconsistent.
	ErrInvalidDimensions = errors.New("spa: invalid dimensions")

	// ErrNilMatrix indicates a nil parity-check matrix was supplied.
	ErrNilMatrix = errors.New("spa: nil matrix")

	// ErrBadMaxIter indicates maxIter is negative. maxIter == 0 is valid: it
	// means decide from the channel LLR alone, with no message passing.
	ErrBadMaxIter = errors.New("spa: maxIter must be non-negative")

	// ErrBadEpsilonClamp indicates WithEpsilonClamp was given a non-positive
	// lower bound or a lower bound not strictly less than the upper bound.
	ErrBadEpsilonClamp = errors.New("spa: epsilon clamp bounds must satisfy 0 < lo < hi")
)
