// Package builder implements the Gallager construction: a regular
// (wc, wr) low-density parity-check matrix built as wc stacked,
// column-permuted copies of a single deterministic identity-pattern band.
//
// Contract (BuildH):
//   - N (codeword length), wc (column weight), wr (row weight), and an
//     explicit *rand.Rand are the only inputs; no package-level RNG exists.
//   - N must be divisible by wr, and M = N*wc/wr must be divisible by wc,
//     else ErrInvalidDimensions.
//   - Band 0 is the deterministic block-diagonal pattern; bands 1..wc-1 are
//     band 0 with columns permuted by an independently drawn permutation.
//   - Returns an M x N matrix.Matrix with column weight exactly wc and row
//     weight exactly wr.
package builder
