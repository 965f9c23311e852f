// SPDX-License-Identifier: MIT
// Package: ldpc/cycles
//
// errors.go — sentinel errors for the cycles package.

package cycles

import "errors"

// ErrInvalidDimensions indicates h's shape does not match the supplied n,
// or a nonzero column of h does not have the declared column weight wc.
var ErrInvalidDimensions = errors.New("cycles: invalid dimensions")
