// Package matrix provides the two dense storage primitives the LDPC
// kernels are built on.
//
//   - Matrix is a row-major GF(2) matrix (entries in {0,1}), with the row
//     XOR, row swap and column swap operations the Gallager constructor and
//     systematic reducer need, plus an extended-workspace helper used by the
//     reducer's column-wise Gauss-Jordan elimination.
//   - Dense is a row-major float64 matrix for tables such as channel
//     probabilities (pyx). The llr package does not use it: its
//     ComputeLLRFromPYX takes pyx as a [][]float64.
//
// Both types store their backing array in a single flat slice rather than
// a slice-of-slices: this keeps the O(M*N) sweeps performed by the reducer
// and the decoder cache-friendly, at the cost of manual index arithmetic
// the two types hide behind At/Set.
package matrix
