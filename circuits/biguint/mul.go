package biguint

import (
	"math/bits"

	"github.com/consensys/gnark/frontend"
)

// Wide is the result of a carry-deferred multiplication. Its limbs sit at the
// usual 2^(W*i) positions but may exceed [0, 2^W): each limb is below
// 2^(W+overflow). A Wide cannot be compared or exposed directly; it is
// consumed by Rem, which normalizes it against a modulus.
type Wide struct {
	Limbs []frontend.Variable

	bound    int
	overflow uint
}

// Bound returns the bit-length bound of the represented value.
func (w *Wide) Bound() int {
	return w.bound
}

// MulNoCarry computes the limb convolution of a and b without normalizing
// carries. The result bound is the sum of the operand bounds. Range and carry
// enforcement is deferred to the consuming Rem, so chained products pay for
// a single normalization.
func (g *API) MulNoCarry(a, b *Var) *Wide {
	g.Check(a)
	g.Check(b)
	limbs := make([]frontend.Variable, len(a.Limbs)+len(b.Limbs)-1)
	for i := range limbs {
		limbs[i] = frontend.Variable(0)
	}
	for i, ai := range a.Limbs {
		for j, bj := range b.Limbs {
			limbs[i+j] = g.api.Add(limbs[i+j], g.api.Mul(ai, bj))
		}
	}
	// each convolution limb is a sum of at most min(len a, len b) products of
	// W-bit values
	terms := min(len(a.Limbs), len(b.Limbs))
	return &Wide{
		Limbs:    limbs,
		bound:    a.bound + b.bound,
		overflow: uint(W + bits.Len(uint(terms-1)) + 1),
	}
}

// addVar adds the (normalized) limbs of v into w position-wise, growing the
// limb slice if v is longer. The overflow grows by one bit.
func (g *API) addVar(w *Wide, v *Var) *Wide {
	limbs := make([]frontend.Variable, max(len(w.Limbs), len(v.Limbs)))
	copy(limbs, w.Limbs)
	for i := len(w.Limbs); i < len(limbs); i++ {
		limbs[i] = frontend.Variable(0)
	}
	for i, l := range v.Limbs {
		limbs[i] = g.api.Add(limbs[i], l)
	}
	return &Wide{
		Limbs:    limbs,
		bound:    max(w.bound, v.bound) + 1,
		overflow: w.overflow + 1,
	}
}
