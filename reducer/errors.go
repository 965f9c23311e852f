// SPDX-License-Identifier: MIT
// Package: ldpc/reducer
//
// errors.go — sentinel errors for the reducer package.

package reducer

import "errors"

// ErrInvalidDimensions indicates H's shape is inconsistent with the supplied
// (n, wc, wr), or the derived K = n - m is not positive.
var ErrInvalidDimensions = errors.New("reducer: invalid dimensions")

// ErrRankDeficient indicates phase B could not locate a pivot for some
// column even after exhausting the column-swap search, so G's last K
// columns cannot be brought to the K x K identity. BuildG reports this
// rather than returning a G without that identity block (see DESIGN.md).
var ErrRankDeficient = errors.New("reducer: parity matrix is rank deficient")
