// Package biguint represents arbitrary-precision unsigned integers inside a
// gnark circuit as little-endian sequences of W-bit limbs, and implements
// modular multiplication, reduction and exponentiation over them as field
// constraints.
package biguint

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Var is a multi-precision unsigned integer in the circuit: limbs are
// little-endian base-2^W digits, and bound is the declared bit-length bound.
// The represented value is sum_i Limbs[i]*2^(W*i). The limb count is always
// ceil(bound/W).
//
// A Var coming from a circuit template or assignment must be passed through
// [API.Check] before use; every gadget entry point does so itself, and the
// API remembers which Vars it has checked, so the per-limb range constraints
// are emitted exactly once per build. A Var holds no per-build state of its
// own and may be compiled repeatedly.
type Var struct {
	Limbs []frontend.Variable

	bound int
}

// NewVar returns an unassigned Var able to hold bound-bit values, for use in
// circuit templates passed to frontend.Compile.
func NewVar(bound int) Var {
	if bound <= 0 {
		panic(ErrBound)
	}
	return Var{Limbs: make([]frontend.Variable, LimbCount(bound)), bound: bound}
}

// New splits v into W-bit limbs for use as a witness or public assignment.
// Values that do not fit the declared bound are rejected, never truncated.
func New(v *big.Int, bound int) (Var, error) {
	limbs, err := Inputize(v, bound)
	if err != nil {
		return Var{}, err
	}
	ret := Var{Limbs: make([]frontend.Variable, len(limbs)), bound: bound}
	for i, l := range limbs {
		ret.Limbs[i] = l
	}
	return ret, nil
}

// Bound returns the declared bit-length bound.
func (v *Var) Bound() int {
	return v.bound
}

// Inputize maps (v, bound) to the exact ordered limb values a verifier must
// supply as public inputs. It is pure and matches, element for element, the
// in-circuit allocation performed by [New] for the same value and bound.
func Inputize(v *big.Int, bound int) ([]*big.Int, error) {
	if bound <= 0 {
		return nil, ErrBound
	}
	if v.Sign() < 0 {
		return nil, ErrNegative
	}
	if v.BitLen() > bound {
		return nil, ErrTooWide
	}
	return decompose(v, LimbCount(bound)), nil
}

// decompose splits v into n little-endian W-bit limbs. The caller guarantees
// v fits.
func decompose(v *big.Int, n int) []*big.Int {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), W), big.NewInt(1))
	rest := new(big.Int).Set(v)
	limbs := make([]*big.Int, n)
	for i := range limbs {
		limbs[i] = new(big.Int).And(rest, mask)
		rest.Rsh(rest, W)
	}
	return limbs
}

// recompose is the inverse of decompose for possibly-unnormalized limbs.
func recompose(limbs []*big.Int) *big.Int {
	ret := new(big.Int)
	tmp := new(big.Int)
	for i, l := range limbs {
		ret.Add(ret, tmp.Lsh(l, uint(W*i)))
	}
	return ret
}
