// Package ldpc is a low-density parity-check (LDPC) coding toolkit: the
// Gallager construction of a regular parity-check matrix, a GF(2)
// systematic reducer that derives a matching generator matrix, a length-4
// cycle counter for Tanner-graph quality, and a Sum-Product Algorithm
// decoder, plus the systematic GF(2) encoder that ties them together.
//
// Subpackages:
//
//	matrix/     — dense GF(2) and float64 matrix primitives (row XOR, swaps,
//	              extended workspace).
//	builder/    — Gallager regular-ensemble parity-check matrix construction.
//	reducer/    — GF(2) Gauss-Jordan systematic-form reduction with coupled
//	              column permutation.
//	cycles/     — length-4 cycle counting in the Tanner graph.
//	spa/        — Sum-Product Algorithm belief-propagation decoder.
//	llr/        — channel LLR computation from a per-symbol probability table.
//	ldpcconfig/ — YAML run-parameter loading for driver programs.
//
// The root package bundles these into a single Code type: BuildCode runs
// the Gallager constructor and the reducer together, and Encode maps an
// information word onto a codeword.
//
//	go get github.com/lvlath/ldpc
package ldpc
