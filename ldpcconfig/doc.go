// Package ldpcconfig loads run parameters for an LDPC driver program from a
// YAML file: the ensemble dimensions (N, Wc, Wr) and the decoder's runtime
// knobs (RNG seed, max iterations, SPA epsilon clamp, early-stop behavior).
//
// This package is ambient scaffolding around the core kernels in matrix,
// builder, reducer, cycles, spa and llr; those packages never read
// configuration themselves, they take plain parameters. ldpcconfig exists
// for the CLI/driver layer that wires them together.
package ldpcconfig
