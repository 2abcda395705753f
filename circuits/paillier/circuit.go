// Package paillier states, as a gnark circuit, that a ciphertext is a correct
// Paillier encryption: c = g^m * r^n mod n2 with g = n+1, without revealing
// the message m or the blinding r.
package paillier

import (
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/verenc/zkpaillier/circuits/biguint"
)

// Circuit proves knowledge of witnesses M and R satisfying
// C = G^M * R^N mod N2. The public inputs appear in the order a verifier
// must supply them: n2, g, n, c.
type Circuit struct {
	N2 biguint.Var `gnark:",public"`
	G  biguint.Var `gnark:",public"`
	N  biguint.Var `gnark:",public"`
	C  biguint.Var `gnark:",public"`
	M  biguint.Var
	R  biguint.Var

	bits int
}

// NewCircuit returns the template for a modulus of the given bit length.
// The same template must be used for compiling and for shaping assignments.
func NewCircuit(bits int) *Circuit {
	return &Circuit{
		N2:   biguint.NewVar(2 * bits),
		G:    biguint.NewVar(2 * bits),
		N:    biguint.NewVar(bits),
		C:    biguint.NewVar(2 * bits),
		M:    biguint.NewVar(bits),
		R:    biguint.NewVar(2 * bits),
		bits: bits,
	}
}

func (me *Circuit) Define(api frontend.API) error {
	bn := biguint.NewAPI(api)
	for _, v := range []*biguint.Var{&me.N2, &me.G, &me.N, &me.C, &me.M, &me.R} {
		bn.Check(v)
	}
	gm := bn.PowM(&me.G, bn.ToBitsLE(&me.M), &me.N2, 2*me.bits)
	rn := bn.PowM(&me.R, bn.ToBitsLE(&me.N), &me.N2, 2*me.bits)
	c := bn.Rem(bn.MulNoCarry(gm, rn), &me.N2, 2*me.bits)
	bn.EnforceEqualUnaligned(c, &me.C)
	return nil
}

// NewAssignment fills the circuit for a concrete statement. n2 and g are
// derived from n; every value is validated against its bound.
func NewAssignment(n, m, r, c *big.Int, bits int) (*Circuit, error) {
	n2 := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, big.NewInt(1))

	var (
		ret Circuit
		err error
	)
	if ret.N2, err = biguint.New(n2, 2*bits); err != nil {
		return nil, err
	}
	if ret.G, err = biguint.New(g, 2*bits); err != nil {
		return nil, err
	}
	if ret.N, err = biguint.New(n, bits); err != nil {
		return nil, err
	}
	if ret.C, err = biguint.New(c, 2*bits); err != nil {
		return nil, err
	}
	if ret.M, err = biguint.New(m, bits); err != nil {
		return nil, err
	}
	if ret.R, err = biguint.New(r, 2*bits); err != nil {
		return nil, err
	}
	return &ret, nil
}
