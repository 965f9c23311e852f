// SPDX-License-Identifier: MIT
// Package: ldpc/llr
//
// llr.go — ComputeLLRFromPYX implementation.

package llr

import (
	"fmt"
	"math"
	"math/bits"
)

const methodComputeLLRFromPYX = "ComputeLLRFromPYX"

// ComputeLLRFromPYX converts a per-symbol probability table pyx (pyx[k][i]
// is the probability mass of symbol k at codeword position i) into a flat
// bit-level LLR vector of length n*log2(e). e must be a power of two.
func ComputeLLRFromPYX(pyx [][]float64, e, n int) ([]float64, error) {
	if e <= 0 || e&(e-1) != 0 {
		return nil, fmt.Errorf("%s: e=%d must be a positive power of two: %w", methodComputeLLRFromPYX, e, ErrInvalidDimensions)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d must be positive: %w", methodComputeLLRFromPYX, n, ErrInvalidDimensions)
	}
	if len(pyx) != e {
		return nil, fmt.Errorf("%s: pyx has %d symbol rows, want %d: %w", methodComputeLLRFromPYX, len(pyx), e, ErrInvalidDimensions)
	}
	for k, row := range pyx {
		if len(row) != n {
			return nil, fmt.Errorf("%s: pyx[%d] has %d entries, want %d: %w", methodComputeLLRFromPYX, k, len(row), n, ErrInvalidDimensions)
		}
	}

	bitsPerSymbol := bits.TrailingZeros(uint(e))
	out := make([]float64, n*bitsPerSymbol)

	for i := 0; i < n; i++ {
		for b := 0; b < bitsPerSymbol; b++ {
			var onesMass, zerosMass float64
			for k := 0; k < e; k++ {
				if (k>>uint(b))&1 == 1 {
					onesMass += pyx[k][i]
				} else {
					zerosMass += pyx[k][i]
				}
			}
			if onesMass == 0 || zerosMass == 0 {
				return nil, fmt.Errorf("%s: position %d bit %d: %w", methodComputeLLRFromPYX, i, b, ErrZeroProbabilityMass)
			}
			out[i*bitsPerSymbol+b] = math.Log(onesMass / zerosMass)
		}
	}

	return out, nil
}
