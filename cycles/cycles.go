// SPDX-License-Identifier: MIT
// Package: ldpc/cycles
//
// cycles.go — implementation of Count4Cycles(h, n, wc).
//
// Complexity: O(N*wc) to build neighbor lists, O(N^2 * wc^2) to compare
// every pair. Pure: h is never mutated.

package cycles

import (
	"fmt"

	"github.com/lvlath/ldpc/matrix"
)

const methodCount4Cycles = "Count4Cycles"

// Count4Cycles returns the number of length-4 cycles in the Tanner graph of
// h, an m x n GF(2) matrix with column weight wc. The accumulator is
// 64-bit: the count grows as O(N^2 * wc^2) and can exceed 32-bit range for
// large N.
func Count4Cycles(h *matrix.Matrix, n, wc int) (uint64, error) {
	if h == nil {
		return 0, fmt.Errorf("%s: %w", methodCount4Cycles, matrix.ErrNilMatrix)
	}
	if h.Cols() != n {
		return 0, fmt.Errorf("%s: h has %d cols, want %d: %w", methodCount4Cycles, h.Cols(), n, ErrInvalidDimensions)
	}

	neighbors, err := variableNeighbors(h, n, wc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodCount4Cycles, err)
	}

	var total uint64
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			s := sharedCheckCount(neighbors[a], neighbors[b])
			if s >= 2 {
				total += uint64(s) * uint64(s-1) / 2
			}
		}
	}
	return total, nil
}

// variableNeighbors returns, for each variable node j, the sorted (by row
// index, since rows are scanned in order) list of incident check nodes.
// Every column must have exactly wc ones, matching the regular-ensemble
// invariant Count4Cycles assumes, or no ones at all (a variable node with no
// incident check node, which lies on no cycle).
func variableNeighbors(h *matrix.Matrix, n, wc int) ([][]int, error) {
	m := h.Rows()
	neighbors := make([][]int, n)
	for j := 0; j < n; j++ {
		neighbors[j] = make([]int, 0, wc)
	}
	for i := 0; i < m; i++ {
		row, err := h.Row(i)
		if err != nil {
			return nil, err
		}
		for j, v := range row {
			if v == 1 {
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}
	for j := 0; j < n; j++ {
		if len(neighbors[j]) != 0 && len(neighbors[j]) != wc {
			return nil, fmt.Errorf("column %d has weight %d, want %d: %w", j, len(neighbors[j]), wc, ErrInvalidDimensions)
		}
	}
	return neighbors, nil
}

// sharedCheckCount counts common entries between two sorted, equal-length
// neighbor lists via an O(wc^2) pairwise comparison.
func sharedCheckCount(a, b []int) int {
	shared := 0
	for _, ai := range a {
		for _, bj := range b {
			if ai == bj {
				shared++
				break
			}
		}
	}
	return shared
}
