package biguint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(QuoRemHint, ShiftRightHint)
}

// QuoRemHint performs the quotient/remainder decomposition of a limb-encoded
// dividend by a limb-encoded modulus.
//
//	ins  = [ nd, nm, nr, d_0, ..., d_(nd-1), m_0, ..., m_(nm-1) ]
//	outs = [ q_0, ..., q_(nq-1), r_0, ..., r_(nr-1) ]   with nq = len(outs)-nr
//
// Dividend limbs may be unnormalized (carry-deferred products); the hint
// recomposes them at their 2^(W*i) positions before dividing. Quotient and
// remainder are emitted as normalized W-bit limbs.
func QuoRemHint(_ *big.Int, ins, outs []*big.Int) error {
	if len(ins) < 3 {
		return errors.New("inputs must start with nd, nm and nr")
	}
	nd, nm, nr := int(ins[0].Int64()), int(ins[1].Int64()), int(ins[2].Int64())
	if nd <= 0 || nm <= 0 || nr <= 0 {
		return fmt.Errorf("invalid nd(%d), nm(%d) or nr(%d)", nd, nm, nr)
	}
	if len(ins) != 3+nd+nm {
		return fmt.Errorf("inputs len mismatch: got %d, want %d", len(ins), 3+nd+nm)
	}
	nq := len(outs) - nr
	if nq <= 0 {
		return fmt.Errorf("need more than %d outputs, got %d", nr, len(outs))
	}

	d := recompose(ins[3 : 3+nd])
	m := recompose(ins[3+nd:])
	if m.Sign() == 0 {
		return errors.New("modulus is zero")
	}
	var q, r big.Int
	q.DivMod(d, m, &r)
	if q.BitLen() > W*nq {
		return fmt.Errorf("quotient needs %d bits, quotient space has %d", q.BitLen(), W*nq)
	}
	if r.BitLen() > W*nr {
		return fmt.Errorf("remainder needs %d bits, remainder space has %d", r.BitLen(), W*nr)
	}
	for i, l := range decompose(&q, nq) {
		outs[i].Set(l)
	}
	for i, l := range decompose(&r, nr) {
		outs[nq+i].Set(l)
	}
	return nil
}

// ShiftRightHint returns ins[1] >> ins[0].
func ShiftRightHint(_ *big.Int, ins, outs []*big.Int) error {
	if len(ins) != 2 || len(outs) != 1 {
		return errors.New("expecting two inputs and one output")
	}
	if !ins[0].IsUint64() {
		return errors.New("shift amount does not fit uint64")
	}
	outs[0].Rsh(ins[1], uint(ins[0].Uint64()))
	return nil
}
