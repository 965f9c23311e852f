// Package llr computes channel log-likelihood ratios from a per-symbol
// probability table, bridging a higher-order modulation demapper (E-ary
// symbols) to the bit-level LLR vector the spa package's decoder expects.
//
// ComputeLLRFromPYX assumes LSB-first bit numbering: bit b of symbol k is
// (k >> b) & 1. For each codeword position i and each bit b of the symbols
// carried at that position, the LLR is the log ratio of the probability
// mass where bit b is 1 to the mass where bit b is 0:
//
//	LLR(i, b) = log( sum_{k: bit_b(k)=1} pyx[k][i] / sum_{k: bit_b(k)=0} pyx[k][i] )
//
// Output is flattened position-major, bit-minor: LLR[i*log2(E)+b].
package llr
