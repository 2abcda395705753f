package biguint

import "github.com/consensys/gnark/frontend"

// PowM computes base^e mod m where e is given by its little-endian bit
// sequence, normally the output of ToBitsLE. Square-and-multiply runs over
// the bits from most to least significant: the accumulator is squared, the
// multiplied-by-base candidate is computed unconditionally, and an arithmetic
// selector picks one of the two per limb. The result carries the requested
// bit bound, which must be at least the bound of m.
//
// Cost is dominated by two reductions per exponent bit, each quadratic in the
// limb count of the bound.
func (g *API) PowM(base *Var, expBits []frontend.Variable, m *Var, bound int) *Var {
	g.Check(base)
	g.Check(m)
	acc := g.one(bound)
	for i := len(expBits) - 1; i >= 0; i-- {
		acc = g.Rem(g.MulNoCarry(acc, acc), m, bound)
		mul := g.Rem(g.MulNoCarry(acc, base), m, bound)
		acc = g.selectVar(expBits[i], mul, acc)
	}
	return acc
}

// one returns the constant 1 with the given bound.
func (g *API) one(bound int) *Var {
	limbs := make([]frontend.Variable, LimbCount(bound))
	limbs[0] = 1
	for i := 1; i < len(limbs); i++ {
		limbs[i] = 0
	}
	return g.trusted(limbs, bound)
}

// selectVar picks a when bit is 1 and b otherwise, limb by limb. Both inputs
// are already range-checked, and a selection of checked limbs needs no new
// range constraint.
func (g *API) selectVar(bit frontend.Variable, a, b *Var) *Var {
	if len(a.Limbs) != len(b.Limbs) {
		panic("biguint: select operands have different limb counts")
	}
	limbs := make([]frontend.Variable, len(a.Limbs))
	for i := range limbs {
		limbs[i] = g.api.Select(bit, a.Limbs[i], b.Limbs[i])
	}
	return g.trusted(limbs, max(a.bound, b.bound))
}
