package biguint

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	stdbits "github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// This suite cross-checks every gadget operation against math/big on random
// values, with valid and invalid assignments of small dedicated circuits.

func random(t *testing.T, bits int) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	require.NoError(t, err)
	return v
}

// ---------------------- bit decomposition ----------------------

type bitsRoundTripCircuit struct {
	A Var
}

func (c *bitsRoundTripCircuit) Define(api frontend.API) error {
	bn := NewAPI(api)
	bits := bn.ToBitsLE(&c.A)
	if len(bits) != len(c.A.Limbs)*W {
		return errors.New("unexpected bit count")
	}
	// rebuilding every limb from its bit slice must reproduce the limb
	for i, limb := range c.A.Limbs {
		api.AssertIsEqual(stdbits.FromBinary(api, bits[i*W:(i+1)*W]), limb)
	}
	return nil
}

func TestToBitsRoundTrip(t *testing.T) {
	assert := test.NewAssert(t)
	a, err := New(random(t, 200), 200)
	require.NoError(t, err)
	assert.CheckCircuit(
		&bitsRoundTripCircuit{A: NewVar(200)},
		test.WithValidAssignment(&bitsRoundTripCircuit{A: a}),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// ---------------------- unreduced multiply + reduction ----------------------

type mulRemCircuit struct {
	A, B, M Var
	R       Var `gnark:",public"`
}

func (c *mulRemCircuit) Define(api frontend.API) error {
	bn := NewAPI(api)
	r := bn.Rem(bn.MulNoCarry(&c.A, &c.B), &c.M, c.M.bound)
	bn.EnforceEqualUnaligned(r, &c.R)
	return nil
}

func TestMulRem(t *testing.T) {
	assert := test.NewAssert(t)
	a := random(t, 96)
	b := random(t, 96)
	m := random(t, 64)
	m.SetBit(m, 0, 1) // nonzero
	r := new(big.Int).Mul(a, b)
	r.Mod(r, m)
	wrong := new(big.Int).Add(r, big.NewInt(1))
	wrong.Mod(wrong, m)

	mk := func(av, bv, rv *big.Int) *mulRemCircuit {
		var (
			ret mulRemCircuit
			err error
		)
		ret.A, err = New(av, 96)
		require.NoError(t, err)
		ret.B, err = New(bv, 96)
		require.NoError(t, err)
		ret.M, err = New(m, 64)
		require.NoError(t, err)
		ret.R, err = New(rv, 64)
		require.NoError(t, err)
		return &ret
	}
	zero := big.NewInt(0)
	assert.CheckCircuit(
		&mulRemCircuit{A: NewVar(96), B: NewVar(96), M: NewVar(64), R: NewVar(64)},
		test.WithValidAssignment(mk(a, b, r)),
		// a zero dividend and a dividend that is an exact multiple of m both
		// reduce to zero
		test.WithValidAssignment(mk(zero, b, zero)),
		test.WithValidAssignment(mk(m, b, zero)),
		// a forged remainder, and a remainder not below the modulus
		test.WithInvalidAssignment(mk(a, b, wrong)),
		test.WithInvalidAssignment(mk(zero, b, m)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// ---------------------- order comparison ----------------------

type ltCircuit struct {
	A Var
	B Var
}

func (c *ltCircuit) Define(api frontend.API) error {
	NewAPI(api).EnforceLt(&c.A, &c.B)
	return nil
}

func TestEnforceLt(t *testing.T) {
	assert := test.NewAssert(t)
	b := random(t, 60)
	b.Add(b, big.NewInt(2))
	less := new(big.Int).Sub(b, big.NewInt(1))
	above := new(big.Int).Add(b, big.NewInt(1))

	mk := func(a, bb *big.Int) *ltCircuit {
		av, err := New(a, 64)
		require.NoError(t, err)
		bv, err := New(bb, 96)
		require.NoError(t, err)
		return &ltCircuit{A: av, B: bv}
	}
	assert.CheckCircuit(
		&ltCircuit{A: NewVar(64), B: NewVar(96)},
		test.WithValidAssignment(mk(less, b)),
		test.WithInvalidAssignment(mk(b, b)),
		test.WithInvalidAssignment(mk(above, b)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// ---------------------- alignment-agnostic equality ----------------------

type unalignedEqCircuit struct {
	A Var
	B Var `gnark:",public"`
}

func (c *unalignedEqCircuit) Define(api frontend.API) error {
	NewAPI(api).EnforceEqualUnaligned(&c.A, &c.B)
	return nil
}

func TestEnforceEqualUnaligned(t *testing.T) {
	assert := test.NewAssert(t)
	v := random(t, 90)

	mk := func(a, b *big.Int) *unalignedEqCircuit {
		av, err := New(a, 96)
		require.NoError(t, err)
		bv, err := New(b, 160)
		require.NoError(t, err)
		return &unalignedEqCircuit{A: av, B: bv}
	}
	assert.CheckCircuit(
		&unalignedEqCircuit{A: NewVar(96), B: NewVar(160)},
		test.WithValidAssignment(mk(v, v)),
		test.WithInvalidAssignment(mk(v, new(big.Int).Add(v, big.NewInt(1)))),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// ---------------------- modular exponentiation ----------------------

type powmCircuit struct {
	Base, E, M Var
	Out        Var `gnark:",public"`
}

func (c *powmCircuit) Define(api frontend.API) error {
	bn := NewAPI(api)
	out := bn.PowM(&c.Base, bn.ToBitsLE(&c.E), &c.M, c.M.bound)
	bn.EnforceEqualUnaligned(out, &c.Out)
	return nil
}

func TestPowM(t *testing.T) {
	assert := test.NewAssert(t)
	base := random(t, 64)
	e := random(t, 16)
	m := random(t, 64)
	m.SetBit(m, 0, 1)
	out := new(big.Int).Exp(base, e, m)
	wrong := new(big.Int).Add(out, big.NewInt(1))
	wrong.Mod(wrong, m)

	mk := func(ev, o *big.Int) *powmCircuit {
		var (
			ret powmCircuit
			err error
		)
		ret.Base, err = New(base, 64)
		require.NoError(t, err)
		ret.E, err = New(ev, 16)
		require.NoError(t, err)
		ret.M, err = New(m, 64)
		require.NoError(t, err)
		ret.Out, err = New(o, 64)
		require.NoError(t, err)
		return &ret
	}
	assert.CheckCircuit(
		&powmCircuit{Base: NewVar(64), E: NewVar(16), M: NewVar(64), Out: NewVar(64)},
		test.WithValidAssignment(mk(e, out)),
		// exponent zero
		test.WithValidAssignment(mk(big.NewInt(0), big.NewInt(1))),
		test.WithInvalidAssignment(mk(e, wrong)),
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// ---------------------- native helpers ----------------------

func TestInputizeMatchesAllocation(t *testing.T) {
	v := random(t, 150)
	limbs, err := Inputize(v, 160)
	require.NoError(t, err)
	a, err := New(v, 160)
	require.NoError(t, err)
	require.Len(t, a.Limbs, len(limbs))
	for i := range limbs {
		require.Zero(t, limbs[i].Cmp(a.Limbs[i].(*big.Int)))
	}
}

func TestInputizeRejects(t *testing.T) {
	_, err := Inputize(big.NewInt(1), 0)
	require.ErrorIs(t, err, ErrBound)
	_, err = Inputize(big.NewInt(-1), 8)
	require.ErrorIs(t, err, ErrNegative)
	_, err = Inputize(big.NewInt(256), 8)
	require.ErrorIs(t, err, ErrTooWide)
	_, err = New(big.NewInt(256), 8)
	require.ErrorIs(t, err, ErrTooWide)
}

func TestQuoRemHint(t *testing.T) {
	d := random(t, 120)
	m := random(t, 64)
	m.SetBit(m, 0, 1)
	var q, r big.Int
	q.DivMod(d, m, &r)

	ins := []*big.Int{big.NewInt(4), big.NewInt(2), big.NewInt(2)}
	ins = append(ins, decompose(d, 4)...)
	ins = append(ins, decompose(m, 2)...)
	outs := make([]*big.Int, 6)
	for i := range outs {
		outs[i] = new(big.Int)
	}
	require.NoError(t, QuoRemHint(nil, ins, outs))
	require.Zero(t, recompose(outs[:4]).Cmp(&q))
	require.Zero(t, recompose(outs[4:]).Cmp(&r))
	require.True(t, r.Cmp(m) < 0)
}

func TestDecomposeRecomposeProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("recompose inverts decompose", prop.ForAll(
		func(raw []byte) bool {
			v := new(big.Int).SetBytes(raw)
			return recompose(decompose(v, LimbCount(8*len(raw)+1))).Cmp(v) == 0
		},
		gen.SliceOfN(32, gen.UInt8()),
	))
	properties.TestingRun(t)
}
