package zkpaillier

import (
	"errors"
	"io"

	bn254 "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// Proof is the fixed-size Groth16 proof of the encryption relation: two G1
// points and one G2 point. The relation carries no commitments, so the
// gnark-side commitment fields stay empty.
type Proof struct {
	AR, KRS bn254.G1Affine
	BS      bn254.G2Affine
}

func (me *Proof) ToGnarkProof() groth16.Proof {
	return &groth16bn254.Proof{
		Ar:  me.AR,
		Krs: me.KRS,
		Bs:  me.BS,
	}
}

func (me *Proof) FromGnarkProof(proof groth16.Proof) error {
	gp, ok := proof.(*groth16bn254.Proof)
	if !ok {
		return errors.New("not a bn254 groth16 proof")
	}
	if len(gp.Commitments) != 0 {
		return errors.New("invalid number of commitments")
	}
	me.AR = gp.Ar
	me.KRS = gp.Krs
	me.BS = gp.Bs
	return nil
}

func (me *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bn254.NewEncoder(w)
	if err := enc.Encode(&me.AR); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(&me.BS); err != nil {
		return enc.BytesWritten(), err
	}
	if err := enc.Encode(&me.KRS); err != nil {
		return enc.BytesWritten(), err
	}
	return enc.BytesWritten(), nil
}

func (me *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := bn254.NewDecoder(r)
	if err := dec.Decode(&me.AR); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&me.BS); err != nil {
		return dec.BytesRead(), err
	}
	if err := dec.Decode(&me.KRS); err != nil {
		return dec.BytesRead(), err
	}
	return dec.BytesRead(), nil
}
