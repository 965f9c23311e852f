package ldpc_test

import (
	"testing"

	"github.com/lvlath/ldpc"
	"github.com/stretchr/testify/require"
)

func TestParamsDerivedValues(t *testing.T) {
	p := ldpc.Params{N: 12, Wc: 3, Wr: 4}
	require.NoError(t, p.Validate())
	require.Equal(t, 9, p.M())
	require.Equal(t, 3, p.K())
	require.Equal(t, 3, p.BlockRows())
	require.InDelta(t, 0.25, p.Rate(), 1e-9)
}

func TestParamsValidateRejectsBadWeights(t *testing.T) {
	p := ldpc.Params{N: 12, Wc: 4, Wr: 4}
	require.ErrorIs(t, p.Validate(), ldpc.ErrInvalidParams)
}

func TestParamsValidateRejectsIndivisibleN(t *testing.T) {
	p := ldpc.Params{N: 10, Wc: 3, Wr: 4}
	require.ErrorIs(t, p.Validate(), ldpc.ErrInvalidParams)
}
