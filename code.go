// SPDX-License-Identifier: MIT
// Package: ldpc
//
// code.go — Code bundles a built parity-check matrix, its matching
// generator matrix, and the parameters that produced them. BuildCode
// orchestrates the builder and reducer packages, mirroring the data flow
// in the system overview: Params -> builder.BuildH -> H -> reducer.BuildG
// -> (H', G).

package ldpc

import (
	"fmt"
	"math/rand"

	"github.com/lvlath/ldpc/builder"
	"github.com/lvlath/ldpc/matrix"
	"github.com/lvlath/ldpc/reducer"
)

// Code bundles a regular LDPC parity-check matrix H with its systematic
// generator matrix G and the parameters used to build them. After
// BuildCode returns, H has been column-permuted in place by the reducer;
// G is consistent with this permuted H, not the original.
type Code struct {
	Params Params
	H      *matrix.Matrix
	G      *matrix.Matrix
}

// BuildCode constructs a Gallager parity-check matrix for params and
// reduces it to systematic form, returning both matrices bundled with
// params. rng drives the Gallager band permutations; it must be non-nil.
func BuildCode(params Params, rng *rand.Rand) (*Code, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("ldpc.BuildCode: %w", err)
	}

	h, err := builder.BuildH(params.N, params.Wc, params.Wr, rng)
	if err != nil {
		return nil, fmt.Errorf("ldpc.BuildCode: %w", err)
	}

	g, err := reducer.BuildG(h, params.N, params.Wc, params.Wr)
	if err != nil {
		return nil, fmt.Errorf("ldpc.BuildCode: %w", err)
	}

	return &Code{Params: params, H: h, G: g}, nil
}
