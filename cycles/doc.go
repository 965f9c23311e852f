// Package cycles counts length-4 cycles in the Tanner graph of a parity-
// check matrix: v_a - c_p - v_b - c_q - v_a with v_a != v_b and c_p != c_q.
//
// Two distinct variable nodes that share s >= 2 check nodes contribute
// C(s,2) = s*(s-1)/2 such cycles. Count4Cycles builds the per-variable
// neighbor lists once (each of exactly wc entries, or empty for an all-zero
// column) and brute-forces every
// unordered pair of variable nodes in O(N^2 * wc^2).
package cycles
