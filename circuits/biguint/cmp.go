package biguint

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

// EnforceLt enforces a < b. It runs a borrow chain across the limbs: at each
// position the difference plus an offset is decomposed into W+1 bits, whose
// top bit tells whether the subtraction underflowed. The strictness comes
// from subtracting one at the least significant position; the chain must end
// without a pending borrow.
func (g *API) EnforceLt(a, b *Var) {
	g.Check(a)
	g.Check(b)
	n := max(len(a.Limbs), len(b.Limbs))
	offset := new(big.Int).Lsh(big.NewInt(1), W)

	var borrow frontend.Variable = 0
	for i := 0; i < n; i++ {
		t := g.api.Sub(g.api.Add(limbOrZero(b, i), offset), limbOrZero(a, i), borrow)
		if i == 0 {
			t = g.api.Sub(t, 1)
		}
		tb := bits.ToBinary(g.api, t, bits.WithNbDigits(W+1))
		borrow = g.api.Sub(1, tb[W])
	}
	g.api.AssertIsEqual(borrow, 0)
}

// EnforceEqualUnaligned enforces that a and b represent the same integer even
// when their bit bounds, and therefore limb counts, differ. The positional
// expressions are compared group by group with carries rather than as one
// flat weighted sum, so the check stays exact for values wider than the
// native field.
func (g *API) EnforceEqualUnaligned(a, b *Var) {
	g.Check(a)
	g.Check(b)
	g.assertLimbsEqual(a.Limbs, b.Limbs, 0, 0)
}

func limbOrZero(v *Var, i int) frontend.Variable {
	if i < len(v.Limbs) {
		return v.Limbs[i]
	}
	return 0
}
