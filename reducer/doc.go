// Package reducer transforms a Gallager parity-check matrix H into
// systematic form, deriving a generator matrix G such that every row of G
// is a codeword of H: G . H'^T = 0 over GF(2).
//
// Algorithm: a two-phase column-wise Gauss-Jordan elimination over an
// extended workspace X = [H^T | I_N] (N rows, M+N columns).
//
//   - Phase A (columns 0..M-1): standard diagonal pivoting; any column swap
//     needed to find a pivot stays inside X and never touches H.
//   - Phase B (columns 2M..M+N-1): pivoting continues along the shifted
//     diagonal of X's right block (row r = col-M); any column swap here
//     exchanges two H columns as well, since the right block's columns
//     correspond 1:1 to H's N columns and G must stay consistent with
//     whatever permutation of H the caller ends up decoding against.
//
// After both phases, the bottom K = N-M rows of X's right half form G.
//
// BuildG mutates H in place via SwapCols; callers must not hold an aliased
// view of H across a call.
package reducer
