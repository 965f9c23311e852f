// SPDX-License-Identifier: MIT
// Package: ldpc/spa
//
// spa.go — Decode implements the Sum-Product Algorithm over the Tanner
// graph of h. Messages are stored as dense m*n flat buffers (row-major,
// matching the matrix package's storage convention); only positions where
// h[i][j] == 1 carry a meaningful value. Neighbor lists are built once up
// front, mirroring the cycles package's variableNeighbors helper.

package spa

import (
	"fmt"

	"github.com/lvlath/ldpc/matrix"
)

const methodDecode = "Decode"

// Decode runs the Sum-Product Algorithm on llr (one channel LLR per
// variable node) against the m x n parity-check matrix h, for at most
// maxIter iterations. k is the number of information bits; the returned
// Result.Info holds the last k positions of the decided codeword.
//
// Sign convention: positive total LLR decides bit = 1, negative decides
// bit = 0; zero is treated as bit = 1.
func Decode(llr []float64, h *matrix.Matrix, m, n, k, maxIter int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, ErrNilMatrix)
	}
	if h.Rows() != m || h.Cols() != n {
		return nil, fmt.Errorf("%s: h is %dx%d, want %dx%d: %w", methodDecode, h.Rows(), h.Cols(), m, n, ErrInvalidDimensions)
	}
	if len(llr) != n {
		return nil, fmt.Errorf("%s: llr has %d entries, want %d: %w", methodDecode, len(llr), n, ErrInvalidDimensions)
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%s: k=%d out of range [1,%d]: %w", methodDecode, k, n, ErrInvalidDimensions)
	}
	if maxIter < 0 {
		return nil, fmt.Errorf("%s: %w", methodDecode, ErrBadMaxIter)
	}
	if cfg.EpsilonLo <= 0 || cfg.EpsilonLo >= cfg.EpsilonHi {
		return nil, fmt.Errorf("%s: lo=%v hi=%v: %w", methodDecode, cfg.EpsilonLo, cfg.EpsilonHi, ErrBadEpsilonClamp)
	}

	checkNeighbors, varNeighbors, err := buildTannerGraph(h, m, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}

	q := make([]float64, m*n) // variable-to-check messages
	r := make([]float64, m*n) // check-to-variable messages
	for j := 0; j < n; j++ {
		for _, i := range varNeighbors[j] {
			q[i*n+j] = llr[j]
		}
	}

	xhat := make([]byte, n)
	totalLLR := make([]float64, n)
	iterations := 0
	satisfied := false

	if maxIter == 0 {
		// No message passing at all: the tentative decision degenerates to
		// the channel LLR alone, per spec.md §8's max_iter=0 boundary case.
		copy(totalLLR, llr)
		decide(totalLLR, xhat)
		satisfied, err = checkSyndrome(h, xhat, m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodDecode, err)
		}
	}

	for iter := 1; iter <= maxIter; iter++ {
		iterations = iter

		updateCheckMessages(checkNeighbors, q, r, n, cfg.EpsilonLo, cfg.EpsilonHi)
		updateVariableMessages(varNeighbors, llr, r, q, totalLLR, n)
		decide(totalLLR, xhat)

		satisfied, err = checkSyndrome(h, xhat, m, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodDecode, err)
		}
		if satisfied && cfg.StopOnSyndrome {
			break
		}
	}

	info := make([]byte, k)
	copy(info, xhat[n-k:])

	return &Result{
		Codeword:   xhat,
		Info:       info,
		Iterations: iterations,
		Syndrome:   satisfied,
	}, nil
}

// buildTannerGraph returns, for each check node, the list of incident
// variable columns, and for each variable node, the list of incident check
// rows, derived from the nonzero entries of h.
func buildTannerGraph(h *matrix.Matrix, m, n int) (checkNeighbors, varNeighbors [][]int, err error) {
	checkNeighbors = make([][]int, m)
	varNeighbors = make([][]int, n)
	for i := 0; i < m; i++ {
		row, err := h.Row(i)
		if err != nil {
			return nil, nil, err
		}
		for j, v := range row {
			if v == 1 {
				checkNeighbors[i] = append(checkNeighbors[i], j)
				varNeighbors[j] = append(varNeighbors[j], i)
			}
		}
	}
	return checkNeighbors, varNeighbors, nil
}

// updateCheckMessages computes r[i][j] for every edge using the tanh rule
// expressed via phi: r_ij = sign * phi( sum_{j' != j} phi(q_ij') ), where
// sign is the product of signs of q_ij' over j' != j in the same check.
func updateCheckMessages(checkNeighbors [][]int, q, r []float64, n int, lo, hi float64) {
	for i, cols := range checkNeighbors {
		sumPhi := 0.0
		signProduct := 1.0
		for _, j := range cols {
			v := q[i*n+j]
			sumPhi += phi(v, lo, hi)
			if v < 0 {
				signProduct = -signProduct
			}
		}
		for _, j := range cols {
			v := q[i*n+j]
			ownSign := 1.0
			if v < 0 {
				ownSign = -1.0
			}
			excludedSum := sumPhi - phi(v, lo, hi)
			excludedSign := signProduct * ownSign
			r[i*n+j] = excludedSign * phi(excludedSum, lo, hi)
		}
	}
}

// updateVariableMessages computes the total a-posteriori LLR for each
// variable node and the outgoing q messages for the next iteration.
func updateVariableMessages(varNeighbors [][]int, channelLLR, r, q []float64, totalLLR []float64, n int) {
	for j, rows := range varNeighbors {
		sum := channelLLR[j]
		for _, i := range rows {
			sum += r[i*n+j]
		}
		totalLLR[j] = sum
		for _, i := range rows {
			q[i*n+j] = sum - r[i*n+j]
		}
	}
}

// decide writes the hard bit decision for each position j into xhat,
// per the sign convention: total >= 0 decides bit 1, else bit 0.
func decide(totalLLR []float64, xhat []byte) {
	for j, v := range totalLLR {
		if v >= 0 {
			xhat[j] = 1
		} else {
			xhat[j] = 0
		}
	}
}

// checkSyndrome returns true if h * xhat^T == 0 over GF(2).
func checkSyndrome(h *matrix.Matrix, xhat []byte, m, n int) (bool, error) {
	for i := 0; i < m; i++ {
		row, err := h.Row(i)
		if err != nil {
			return false, err
		}
		parity := 0
		for j := 0; j < n; j++ {
			if row[j] == 1 && xhat[j] == 1 {
				parity ^= 1
			}
		}
		if parity != 0 {
			return false, nil
		}
	}
	return true, nil
}
