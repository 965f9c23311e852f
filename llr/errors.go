// SPDX-License-Identifier: MIT
// Package: ldpc/llr
//
// errors.go — sentinel errors for the llr package.

package llr

import "errors"

var (
	// ErrInvalidDimensions indicates pyx's shape is inconsistent with e or n,
	// or e is not a power of two.
	ErrInvalidDimensions = errors.New("llr: invalid dimensions")

	// ErrZeroProbabilityMass indicates a bit/position combination has zero
	// probability mass on one side of the ratio, making the LLR undefined.
	ErrZeroProbabilityMass = errors.New("llr: zero probability mass")
)
