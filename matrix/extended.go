// SPDX-License-Identifier: MIT
// Package matrix - extended-workspace primitive for the systematic reducer.

package matrix

// NewExtendedWorkspace builds X = [base | I_n] where base is an n x w
// GF(2) matrix and I_n is the n x n identity: X is n x (w+n). This is the
// workspace the reducer performs its column-wise Gauss-Jordan elimination
// over - the left block carries Hᵀ, the right block accumulates the row
// operations that ultimately expose the kernel of Hᵀ.
// Complexity: O(n*(w+n)) time and memory.
func NewExtendedWorkspace(base *Matrix) (*Matrix, error) {
	if base == nil {
		return nil, ErrNilMatrix
	}
	n, w := base.Rows(), base.Cols()
	x, err := NewMatrix(n, w+n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		baseOff := i * base.c
		xOff := i * x.c
		copy(x.data[xOff:xOff+w], base.data[baseOff:baseOff+w])
		x.data[xOff+w+i] = 1
	}
	return x, nil
}
