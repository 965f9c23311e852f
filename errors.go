// SPDX-License-Identifier: MIT
// Package: ldpc
//
// errors.go — sentinel errors for the root package.

package ldpc

import "errors"

var (
	// ErrInvalidParams indicates N, Wc or Wr fail the domain constraints in
	// Params.Validate: Wc >= 2, Wr > Wc, N % Wr == 0, (N*Wc/Wr) % Wc == 0.
	ErrInvalidParams = errors.New("ldpc: invalid parameters")
)
