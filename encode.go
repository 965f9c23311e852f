// SPDX-License-Identifier: MIT
// Package: ldpc
//
// encode.go — the GF(2) systematic encoder (spec §4.5): code[i] is the XOR,
// over all information bits j, of (info[j] AND G[j][i]). With G's identity
// block in its last K columns, this reproduces info unchanged at codeword
// positions N-K..N-1.

package ldpc

import (
	"fmt"

	"github.com/lvlath/ldpc/matrix"
)

const methodEncode = "Encode"

// Encode multiplies info (a K-bit row vector) by g (a K x N generator
// matrix) over GF(2), returning the resulting N-bit codeword.
func Encode(info []byte, g *matrix.Matrix) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodEncode, matrix.ErrNilMatrix)
	}
	k := g.Rows()
	n := g.Cols()
	if len(info) != k {
		return nil, fmt.Errorf("%s: info has %d bits, want %d: %w", methodEncode, len(info), k, ErrInvalidParams)
	}

	code := make([]byte, n)
	for j := 0; j < k; j++ {
		if info[j] == 0 {
			continue
		}
		row, err := g.Row(j)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodEncode, err)
		}
		for i := 0; i < n; i++ {
			if row[i] == 1 {
				code[i] ^= 1
			}
		}
	}

	return code, nil
}
