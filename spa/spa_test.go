// Package spa_test exercises Decode against the invariants in spec §8.
package spa_test

import (
	"math/rand"
	"testing"

	"github.com/lvlath/ldpc/builder"
	"github.com/lvlath/ldpc/matrix"
	"github.com/lvlath/ldpc/reducer"
	"github.com/lvlath/ldpc/spa"
	"github.com/stretchr/testify/require"
)

// strongLLR converts a hard bit (0/1) directly into a confident channel LLR.
// Positive LLR means bit = 1, per the decoder's sign convention.
func strongLLR(bit byte) float64 {
	if bit == 1 {
		return 8.0
	}
	return -8.0
}

func TestDecodeConvergesOnNoiselessChannel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n, wc, wr := 12, 3, 4
	h, err := builder.BuildH(n, wc, wr, rng)
	require.NoError(t, err)

	hCopy := h.Clone()
	g, err := reducer.BuildG(hCopy, n, wc, wr)
	require.NoError(t, err)

	m := n * wc / wr
	k := n - m

	info := make([]byte, k)
	for i := range info {
		info[i] = byte(i % 2)
	}

	codeword := make([]byte, n)
	for col := 0; col < n; col++ {
		bit := byte(0)
		for row := 0; row < k; row++ {
			gv, err := g.At(row, col)
			require.NoError(t, err)
			if gv == 1 && info[row] == 1 {
				bit ^= 1
			}
		}
		codeword[col] = bit
	}

	llr := make([]float64, n)
	for j, bit := range codeword {
		llr[j] = strongLLR(bit)
	}

	result, err := spa.Decode(llr, h, m, n, k, 20)
	require.NoError(t, err)
	require.True(t, result.Syndrome)
	require.Equal(t, codeword, result.Codeword)
}

func TestDecodeInvalidDimensions(t *testing.T) {
	h, err := matrix.NewMatrix(2, 4)
	require.NoError(t, err)
	_, err = spa.Decode(make([]float64, 3), h, 2, 4, 2, 10)
	require.ErrorIs(t, err, spa.ErrInvalidDimensions)
}

func TestDecodeRejectsNilMatrix(t *testing.T) {
	_, err := spa.Decode(make([]float64, 4), nil, 2, 4, 2, 10)
	require.ErrorIs(t, err, spa.ErrNilMatrix)
}

func TestDecodeRejectsNegativeMaxIter(t *testing.T) {
	h, err := matrix.NewMatrix(2, 4)
	require.NoError(t, err)
	_, err = spa.Decode(make([]float64, 4), h, 2, 4, 2, -1)
	require.ErrorIs(t, err, spa.ErrBadMaxIter)
}

// TestDecodeZeroMaxIterReturnsLLROnlyDecision covers spec.md §8's boundary
// behavior: max_iter = 0 returns the hard decision from the channel LLR
// alone, with no message passing.
func TestDecodeZeroMaxIterReturnsLLROnlyDecision(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n, wc, wr := 12, 3, 4
	h, err := builder.BuildH(n, wc, wr, rng)
	require.NoError(t, err)

	m := n * wc / wr
	k := n - m

	llr := make([]float64, n)
	want := make([]byte, n)
	for j := range llr {
		if j%2 == 0 {
			llr[j] = 3.0
			want[j] = 1
		} else {
			llr[j] = -3.0
			want[j] = 0
		}
	}

	result, err := spa.Decode(llr, h, m, n, k, 0)
	require.NoError(t, err)
	require.Equal(t, 0, result.Iterations)
	require.Equal(t, want, result.Codeword)
	require.Equal(t, want[n-k:], result.Info)
}

func TestDecodeRejectsBadEpsilonClamp(t *testing.T) {
	h, err := matrix.NewMatrix(2, 4)
	require.NoError(t, err)
	_, err = spa.Decode(make([]float64, 4), h, 2, 4, 2, 10, spa.WithEpsilonClamp(-1, 5))
	require.ErrorIs(t, err, spa.ErrBadEpsilonClamp)
}

func TestDecodeRunsFullIterationsWhenStopDisabled(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	n, wc, wr := 12, 3, 4
	h, err := builder.BuildH(n, wc, wr, rng)
	require.NoError(t, err)

	m := n * wc / wr
	k := n - m

	llr := make([]float64, n)
	for j := range llr {
		llr[j] = 8.0
	}

	result, err := spa.Decode(llr, h, m, n, k, 5, spa.WithStopOnSyndrome(false))
	require.NoError(t, err)
	require.Equal(t, 5, result.Iterations)
}
