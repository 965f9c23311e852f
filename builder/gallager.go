// SPDX-License-Identifier: MIT
// Package: ldpc/builder
//
// gallager.go — implementation of BuildH(n, wc, wr, rng).
//
// Canonical model:
//   - Partition the M = n*wc/wr rows into wc horizontal bands of
//     blockRows = M/wc rows each.
//   - Band 0, row r (0 <= r < blockRows): ones in columns [r*wr, (r+1)*wr).
//     Each band-0 row has weight wr; each column of band 0 receives exactly
//     one 1 (the bands partition the N columns into blockRows groups of wr).
//   - Band b in [1, wc): band 0 with columns permuted by an independently
//     drawn permutation pi_b, i.e. band-b row r, column pi_b(k) gets the
//     value of band-0 row r, column k. Column weight is preserved by
//     construction: each band contributes exactly one 1 per column.
//
// Contract:
//   - n divisible by wr, and M divisible by wc, else ErrInvalidDimensions.
//   - rng non-nil, else ErrNeedRandSource.
//   - Returns an M x N matrix.Matrix with column weight wc and row weight wr.
//
// Complexity:
//   - O(wc * n) time (wc bands, one pass per band); O(M*n) allocation for H.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/lvlath/ldpc/matrix"
)

const methodBuildH = "BuildH"

// BuildH constructs a regular (wc, wr) LDPC parity-check matrix over
// n variable nodes, using rng for the wc-1 random column permutations.
func BuildH(n, wc, wr int, rng *rand.Rand) (*matrix.Matrix, error) {
	// 1) Domain validation, independent of rng.
	if wc < 2 {
		return nil, fmt.Errorf("%s: wc=%d < 2: %w", methodBuildH, wc, ErrInvalidDimensions)
	}
	if wr <= wc {
		return nil, fmt.Errorf("%s: wr=%d <= wc=%d: %w", methodBuildH, wr, wc, ErrInvalidDimensions)
	}
	if n <= 0 || n%wr != 0 {
		return nil, fmt.Errorf("%s: n=%d not divisible by wr=%d: %w", methodBuildH, n, wr, ErrInvalidDimensions)
	}
	m := n * wc / wr
	if m%wc != 0 {
		return nil, fmt.Errorf("%s: m=%d not divisible by wc=%d: %w", methodBuildH, m, wc, ErrInvalidDimensions)
	}
	blockRows := m / wc

	// 2) rng is mandatory: the bands beyond band 0 are pure randomness.
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildH, ErrNeedRandSource)
	}

	h, err := matrix.NewMatrix(m, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildH, err)
	}

	// 3) Band 0: deterministic block-diagonal pattern of 1s.
	for r := 0; r < blockRows; r++ {
		start := r * wr
		for k := 0; k < wr; k++ {
			if err := h.Set(r, start+k, 1); err != nil {
				return nil, fmt.Errorf("%s: band0 Set(%d,%d): %w", methodBuildH, r, start+k, err)
			}
		}
	}

	// 4) Bands 1..wc-1: band 0 with columns permuted by an independent
	//    permutation pi_b. Row r of band b lives at matrix row b*blockRows+r.
	for b := 1; b < wc; b++ {
		pi := shufflePermutation(rng, n)
		rowOffset := b * blockRows
		for r := 0; r < blockRows; r++ {
			start := r * wr
			for k := 0; k < wr; k++ {
				col := pi[start+k]
				if err := h.Set(rowOffset+r, col, 1); err != nil {
					return nil, fmt.Errorf("%s: band%d Set(%d,%d): %w", methodBuildH, b, rowOffset+r, col, err)
				}
			}
		}
	}

	return h, nil
}
