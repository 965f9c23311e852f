package ldpc_test

import (
	"math/rand"
	"testing"

	"github.com/lvlath/ldpc"
	"github.com/lvlath/ldpc/spa"
	"github.com/stretchr/testify/require"
)

func TestEncodeSystematicTail(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	params := ldpc.Params{N: 12, Wc: 3, Wr: 4}
	code, err := ldpc.BuildCode(params, rng)
	require.NoError(t, err)

	info := []byte{1, 0, 1}
	cw, err := ldpc.Encode(info, code.G)
	require.NoError(t, err)
	require.Len(t, cw, params.N)
	require.Equal(t, info, cw[params.N-params.K():])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	params := ldpc.Params{N: 12, Wc: 3, Wr: 4}
	code, err := ldpc.BuildCode(params, rng)
	require.NoError(t, err)

	info := []byte{1, 1, 0}
	cw, err := ldpc.Encode(info, code.G)
	require.NoError(t, err)

	llrVec := make([]float64, params.N)
	for i, bit := range cw {
		if bit == 1 {
			llrVec[i] = 10.0
		} else {
			llrVec[i] = -10.0
		}
	}

	result, err := spa.Decode(llrVec, code.H, params.M(), params.N, params.K(), 2)
	require.NoError(t, err)
	require.True(t, result.Syndrome)
	require.Equal(t, info, result.Info)
}

func TestEncodeRejectsWrongInfoLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	params := ldpc.Params{N: 12, Wc: 3, Wr: 4}
	code, err := ldpc.BuildCode(params, rng)
	require.NoError(t, err)

	_, err = ldpc.Encode([]byte{1, 0}, code.G)
	require.ErrorIs(t, err, ldpc.ErrInvalidParams)
}
