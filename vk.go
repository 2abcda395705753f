package zkpaillier

import (
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
)

// Vk is the verifier side of the relation: a Groth16 verifying key plus the
// public-input plumbing. A rejected proof surfaces as a non-nil error from
// Verify; malformed key or proof bytes fail earlier, in ReadFrom.
type Vk struct {
	vk groth16.VerifyingKey
}

func (me *Vk) ToGnarkVerifyingKey() groth16.VerifyingKey {
	return me.vk
}

// Verify checks the proof against the public inputs, which must be the limb
// vector produced by paillier.PublicInputs (or returned by Pk.Prove).
func (me *Vk) Verify(proof *Proof, publics []fr.Element) error {
	if me.vk == nil {
		return errors.New("verifying key is not initialized")
	}
	if len(publics) != me.vk.NbPublicWitness() {
		return fmt.Errorf("have %d public inputs, relation has %d", len(publics), me.vk.NbPublicWitness())
	}
	w, err := witness.New(FIELD)
	if err != nil {
		return err
	}
	vals := make(chan any, len(publics))
	for _, v := range publics {
		vals <- v
	}
	close(vals)
	if err := w.Fill(len(publics), 0, vals); err != nil {
		return err
	}
	return groth16.Verify(proof.ToGnarkProof(), me.vk, w)
}

func (me *Vk) WriteTo(w io.Writer) (int64, error) {
	if me.vk == nil {
		return 0, errors.New("verifying key is not initialized")
	}
	return me.vk.WriteTo(w)
}

func (me *Vk) ReadFrom(r io.Reader) (int64, error) {
	me.vk = groth16.NewVerifyingKey(ecc.BN254)
	return me.vk.ReadFrom(r)
}
