package biguint

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

// Rem reduces d modulo m. The prover supplies quotient q and remainder r
// through a hint; the circuit never divides but checks the identity
//
//	d == q*m + r  and  0 <= r < m
//
// as exact integer statements over the limbs. The returned Var holds r with
// the requested bit bound. If no consistent (q, r) exists for the asserted
// limbs, the system is unsatisfiable and proof generation fails.
func (g *API) Rem(d *Wide, m *Var, bound int) *Var {
	g.Check(m)
	nq := LimbCount(d.bound)
	nr := LimbCount(bound)
	ins := make([]frontend.Variable, 0, 3+len(d.Limbs)+len(m.Limbs))
	ins = append(ins, len(d.Limbs), len(m.Limbs), nr)
	ins = append(ins, d.Limbs...)
	ins = append(ins, m.Limbs...)
	outs, err := g.api.Compiler().NewHint(QuoRemHint, nq+nr, ins...)
	if err != nil {
		panic(err)
	}
	q := &Var{Limbs: outs[:nq], bound: d.bound}
	r := &Var{Limbs: outs[nq:], bound: bound}
	g.Check(q)
	g.Check(r)
	g.EnforceLt(r, m)
	rhs := g.addVar(g.MulNoCarry(q, m), r)
	g.assertLimbsEqual(d.Limbs, rhs.Limbs, d.overflow, rhs.overflow)
	return r
}

// assertLimbsEqual asserts that two little-endian limb sequences, with limbs
// below 2^(W+ovL) and 2^(W+ovR) respectively, represent the same integer.
// The check walks the limbs least significant first, carrying the excess of
// each position into the next; an additive offset keeps every intermediate
// value non-negative so it can be right-shifted cleanly.
func (g *API) assertLimbsEqual(l, r []frontend.Variable, ovL, ovR uint) {
	n := max(len(l), len(r))
	cb := max(ovL, ovR) + 1
	maxValue := new(big.Int).Lsh(big.NewInt(1), uint(W)+cb)
	maxValueShift := new(big.Int).Lsh(big.NewInt(1), cb)

	var carry frontend.Variable = 0
	for i := 0; i < n; i++ {
		diff := g.api.Add(maxValue, carry)
		if i < len(l) {
			diff = g.api.Add(diff, l[i])
		}
		if i < len(r) {
			diff = g.api.Sub(diff, r[i])
		}
		if i > 0 {
			diff = g.api.Sub(diff, maxValueShift)
		}
		carry = g.rsh(diff, W, W+int(cb)+1)
	}
	g.api.AssertIsEqual(carry, maxValueShift)
}

// rsh returns v >> shift, constraining the low shift bits of v to be zero.
// v must be known to fit in maxBits bits.
func (g *API) rsh(v frontend.Variable, shift, maxBits int) frontend.Variable {
	outs, err := g.api.Compiler().NewHint(ShiftRightHint, 1, shift, v)
	if err != nil {
		panic(err)
	}
	shifted := outs[0]
	bits.ToBinary(g.api, shifted, bits.WithNbDigits(maxBits-shift))
	g.api.AssertIsEqual(g.api.Mul(shifted, new(big.Int).Lsh(big.NewInt(1), uint(shift))), v)
	return shifted
}
