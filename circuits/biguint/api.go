package biguint

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

// API carries the constraint-system handle through every gadget call, along
// with the range-check bookkeeping of the current build. One instance per
// Define invocation; the circuit structs themselves stay stateless, so a
// template can be compiled any number of times. Gadget calls mutate the
// underlying system sequentially and are not safe for concurrent use.
type API struct {
	api frontend.API

	checked map[*Var]bool
	bits    map[*Var][]frontend.Variable
}

// NewAPI wraps a frontend.API for big-uint operations.
func NewAPI(api frontend.API) *API {
	return &API{
		api:     api,
		checked: make(map[*Var]bool),
		bits:    make(map[*Var][]frontend.Variable),
	}
}

// Check emits the allocation-time range constraints of v: every limb is
// decomposed into W bits, which both bounds it to [0, 2^W) and caches the
// bit representation for ToBitsLE. Calling Check twice is a no-op.
func (g *API) Check(v *Var) {
	if g.checked[v] {
		return
	}
	g.bits[v] = g.limbBits(v)
	g.checked[v] = true
}

// ToBitsLE returns the little-endian bit sequence of v spanning all limbs.
// The bits were already established when v was range-checked, so no new
// constraints are emitted after the first Check.
func (g *API) ToBitsLE(v *Var) []frontend.Variable {
	g.Check(v)
	if g.bits[v] == nil {
		// v was produced by a limb-level selection; its limbs are known to be
		// in range but the bits were never materialized.
		g.bits[v] = g.limbBits(v)
	}
	return g.bits[v]
}

func (g *API) limbBits(v *Var) []frontend.Variable {
	ret := make([]frontend.Variable, 0, len(v.Limbs)*W)
	for _, l := range v.Limbs {
		ret = append(ret, bits.ToBinary(g.api, l, bits.WithNbDigits(W))...)
	}
	return ret
}

// trusted marks limbs as already range-checked without caching bits. Used for
// values assembled from checked parts (selections, constants).
func (g *API) trusted(limbs []frontend.Variable, bound int) *Var {
	v := &Var{Limbs: limbs, bound: bound}
	g.checked[v] = true
	return v
}
