// Package spa implements the Sum-Product Algorithm (belief propagation)
// for decoding LDPC codewords over the binary-input AWGN channel.
//
// Overview:
//
//   - Decode takes a vector of channel log-likelihood ratios (LLRs), one per
//     variable node, and a parity-check matrix h, and iteratively refines an
//     estimate of the transmitted codeword via message passing on the Tanner
//     graph.
//   - Each iteration has two message-passing phases: check-node update (the
//     tanh rule, computed via the phi function for numerical stability) and
//     variable-node update (summing incoming check messages with the channel
//     LLR). After both phases a tentative hard decision is made and checked
//     against the syndrome h * xhat^T == 0.
//   - Decoding stops early on zero syndrome (a validated codeword) or after
//     maxIter iterations, whichever comes first.
//
// Functional options customize the decoder without changing the call
// signature: WithEpsilonClamp bounds the phi-function's domain to avoid
// +-Inf messages, and WithStopOnSyndrome controls whether early stopping is
// enabled at all (for callers who want to run every iteration regardless,
// e.g. to study convergence behavior).
//
// Complexity: O(maxIter * (m*wr + n*wc)) time, O(m*n) space for the message
// matrices.
package spa
