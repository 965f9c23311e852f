// Package builder_test contains functional tests for BuildH.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/lvlath/ldpc/builder"
	"github.com/stretchr/testify/require"
)

// TestBuildHInvalidDimensions covers the domain checks from spec §4.1/§7.
func TestBuildHInvalidDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := builder.BuildH(13, 3, 4, rng) // 13 not divisible by wr=4
	require.ErrorIs(t, err, builder.ErrInvalidDimensions)

	_, err = builder.BuildH(12, 1, 4, rng) // wc < 2
	require.ErrorIs(t, err, builder.ErrInvalidDimensions)

	_, err = builder.BuildH(12, 4, 3, rng) // wr <= wc
	require.ErrorIs(t, err, builder.ErrInvalidDimensions)
}

// TestBuildHRequiresRand ensures a nil RNG is rejected.
func TestBuildHRequiresRand(t *testing.T) {
	_, err := builder.BuildH(12, 3, 4, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestBuildHShape reproduces the concrete scenario from spec §8 scenario 1:
// N=12, wc=3, wr=4 => M=9, K=3, blockRows=3, with a deterministic band 0.
func TestBuildHShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h, err := builder.BuildH(12, 3, 4, rng)
	require.NoError(t, err)
	require.Equal(t, 9, h.Rows())
	require.Equal(t, 12, h.Cols())

	wantBand0 := [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	}
	for r, cols := range wantBand0 {
		for j := 0; j < 12; j++ {
			v, err := h.At(r, j)
			require.NoError(t, err)
			want := byte(0)
			if contains(cols, j) {
				want = 1
			}
			require.Equal(t, want, v, "band0 row %d col %d", r, j)
		}
	}
}

// TestBuildHWeights checks the universal invariant: every column has weight
// exactly wc and every row has weight exactly wr, across several seeds.
func TestBuildHWeights(t *testing.T) {
	cases := []struct{ n, wc, wr int }{
		{12, 3, 4},
		{12, 2, 3},
		{24, 3, 6},
	}
	for _, c := range cases {
		for seed := int64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			h, err := builder.BuildH(c.n, c.wc, c.wr, rng)
			require.NoError(t, err)

			m := c.n * c.wc / c.wr
			for i := 0; i < m; i++ {
				rw, err := h.RowWeight(i)
				require.NoError(t, err)
				require.Equal(t, c.wr, rw)
			}
			for j := 0; j < c.n; j++ {
				cw, err := h.ColumnWeight(j)
				require.NoError(t, err)
				require.Equal(t, c.wc, cw)
			}
		}
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
