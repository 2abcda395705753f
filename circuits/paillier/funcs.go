// Native (off-circuit) Paillier arithmetic and public-input assembly.
package paillier

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/verenc/zkpaillier/circuits/biguint"
)

// GenerateModulus samples two bits/2-bit primes from the given source and
// returns them with their product n. The source is typically crypto/rand's
// Reader; tests may pass a deterministic one.
func GenerateModulus(random io.Reader, bits int) (p, q, n *big.Int, err error) {
	if p, err = rand.Prime(random, bits/2); err != nil {
		return nil, nil, nil, err
	}
	if q, err = rand.Prime(random, bits/2); err != nil {
		return nil, nil, nil, err
	}
	return p, q, new(big.Int).Mul(p, q), nil
}

// Encrypt computes the Paillier ciphertext g^m * r^n mod n2 with g = n+1.
func Encrypt(n, m, r *big.Int) *big.Int {
	n2 := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, big.NewInt(1))
	c := new(big.Int).Exp(g, m, n2)
	c.Mul(c, new(big.Int).Exp(r, n, n2))
	return c.Mod(c, n2)
}

// PublicInputs returns the ordered public-input vector {n2, g, n, c} a
// verifier must supply for the circuit, limb for limb identical to the
// in-circuit allocation of the same values.
func PublicInputs(n, c *big.Int, bits int) ([]*big.Int, error) {
	n2 := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, big.NewInt(1))

	var ret []*big.Int
	for _, in := range []struct {
		v     *big.Int
		bound int
	}{
		{n2, 2 * bits},
		{g, 2 * bits},
		{n, bits},
		{c, 2 * bits},
	} {
		limbs, err := biguint.Inputize(in.v, in.bound)
		if err != nil {
			return nil, err
		}
		ret = append(ret, limbs...)
	}
	return ret, nil
}
