// SPDX-License-Identifier: MIT
// Package: ldpc/reducer
//
// reducer.go — implementation of BuildG(h, n, wc, wr).
//
// Complexity: O(N*(M+N)) per phase for the pivot search plus elimination
// sweep, O(wc*wr relation) total O(N*(M+N)) - dominated by the N*(M+N)
// workspace itself.

package reducer

import (
	"fmt"

	"github.com/lvlath/ldpc/matrix"
)

const methodBuildG = "BuildG"

// BuildG reduces h to systematic form and returns the K x N generator
// matrix G. h is mutated in place: phase B may swap columns of h to keep it
// consistent with G. K = n - m where m = n*wc/wr.
func BuildG(h *matrix.Matrix, n, wc, wr int) (*matrix.Matrix, error) {
	if wc <= 0 || wr <= wc || n <= 0 || n%wr != 0 {
		return nil, fmt.Errorf("%s: %w", methodBuildG, ErrInvalidDimensions)
	}
	m := n * wc / wr
	k := n - m
	if k <= 0 {
		return nil, fmt.Errorf("%s: k=%d <= 0: %w", methodBuildG, k, ErrInvalidDimensions)
	}
	if h == nil {
		return nil, fmt.Errorf("%s: %w", methodBuildG, matrix.ErrNilMatrix)
	}
	if h.Rows() != m || h.Cols() != n {
		return nil, fmt.Errorf("%s: h is %dx%d, want %dx%d: %w",
			methodBuildG, h.Rows(), h.Cols(), m, n, ErrInvalidDimensions)
	}

	x, err := matrix.NewExtendedWorkspace(h.Transpose())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildG, err)
	}

	// Phase A: free column swaps, confined to X.
	for j := 0; j < m; j++ {
		found, _, err := locatePivot(x, j, j, j)
		if err != nil {
			return nil, fmt.Errorf("%s: phaseA pivot(%d): %w", methodBuildG, j, err)
		}
		if !found {
			continue // leave this column unpivoted; not a documented failure mode
		}
		if err := eliminateColumn(x, j, j); err != nil {
			return nil, fmt.Errorf("%s: phaseA eliminate(%d): %w", methodBuildG, j, err)
		}
	}

	// Phase B: coupled column swaps, mirrored onto h.
	for j := 2 * m; j < m+n; j++ {
		r := j - m
		found, swappedCol, err := locatePivot(x, r, j, j)
		if err != nil {
			return nil, fmt.Errorf("%s: phaseB pivot(%d): %w", methodBuildG, j, err)
		}
		if !found {
			return nil, fmt.Errorf("%s: %w", methodBuildG, ErrRankDeficient)
		}
		if swappedCol >= 0 {
			if err := h.SwapCols(j-m, swappedCol-m); err != nil {
				return nil, fmt.Errorf("%s: h.SwapCols(%d,%d): %w", methodBuildG, j-m, swappedCol-m, err)
			}
		}
		if err := eliminateColumn(x, r, j); err != nil {
			return nil, fmt.Errorf("%s: phaseB eliminate(%d): %w", methodBuildG, j, err)
		}
	}

	return extractG(x, m, n, k)
}

// locatePivot ensures X[row][col] == 1, searching rows (row+1..N-1) first
// and, failing that, columns (width-1 down to colFloor+1) in row. Returns
// found=false if no 1 could be brought to (row, col). swappedCol is the
// column X was swapped with, or -1 if no column swap occurred.
func locatePivot(x *matrix.Matrix, row, col, colFloor int) (found bool, swappedCol int, err error) {
	v, err := x.At(row, col)
	if err != nil {
		return false, -1, err
	}
	if v == 1 {
		return true, -1, nil
	}

	for i := row + 1; i < x.Rows(); i++ {
		vi, err := x.At(i, col)
		if err != nil {
			return false, -1, err
		}
		if vi == 1 {
			if err := x.SwapRows(row, i); err != nil {
				return false, -1, err
			}
			return true, -1, nil
		}
	}

	for k := x.Cols() - 1; k > colFloor; k-- {
		vk, err := x.At(row, k)
		if err != nil {
			return false, -1, err
		}
		if vk == 1 {
			if err := x.SwapCols(col, k); err != nil {
				return false, -1, err
			}
			return true, k, nil
		}
	}

	return false, -1, nil
}

// eliminateColumn XORs row pivotRow into every other row carrying a 1 in
// pivotCol, over the full workspace width.
func eliminateColumn(x *matrix.Matrix, pivotRow, pivotCol int) error {
	for i := 0; i < x.Rows(); i++ {
		if i == pivotRow {
			continue
		}
		v, err := x.At(i, pivotCol)
		if err != nil {
			return err
		}
		if v == 1 {
			if err := x.RowXOR(i, pivotRow); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractG reads the bottom K rows of X's right half (rows m..n-1, columns
// m..m+n-1) into a fresh K x N matrix.
func extractG(x *matrix.Matrix, m, n, k int) (*matrix.Matrix, error) {
	g, err := matrix.NewMatrix(k, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		for t := 0; t < n; t++ {
			v, err := x.At(m+i, m+t)
			if err != nil {
				return nil, err
			}
			if v == 1 {
				if err := g.Set(i, t, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
