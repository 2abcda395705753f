package zkpaillier

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
)

// Pk bundles everything a prover needs: the compiled constraint system, the
// Groth16 proving key and the matching Vk.
type Pk struct {
	vk  Vk
	pk  groth16.ProvingKey
	ccs constraint.ConstraintSystem
}

// Compile builds the constraint system for the given circuit template and
// runs the Groth16 parameter generation.
func (me *Pk) Compile(circuit frontend.Circuit) error {
	ccs, err := frontend.Compile(FIELD, r1cs.NewBuilder, circuit)
	if err != nil {
		return err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return err
	}
	me.ccs = ccs
	me.pk = pk
	me.vk = Vk{vk: vk}
	log := logger.Logger()
	log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("relation compiled")
	return nil
}

func (me *Pk) Vk() Vk {
	return me.vk
}

func (me *Pk) ToGnarkProvingKey() groth16.ProvingKey {
	return me.pk
}

func (me *Pk) ToGnarkConstraintSystem() constraint.ConstraintSystem {
	return me.ccs
}

// Prove builds the full witness from the assignment and creates a proof. It
// returns the public part of the witness in verifier order alongside the
// proof, so callers can hand both to Vk.Verify directly.
func (me *Pk) Prove(assignment frontend.Circuit) ([]fr.Element, *Proof, error) {
	witness, err := frontend.NewWitness(assignment, FIELD)
	if err != nil {
		return nil, nil, err
	}
	gp, err := groth16.Prove(me.ccs, me.pk, witness)
	if err != nil {
		return nil, nil, err
	}
	var proof Proof
	if err := proof.FromGnarkProof(gp); err != nil {
		return nil, nil, err
	}
	public, err := witness.Public()
	if err != nil {
		return nil, nil, err
	}
	return public.Vector().(fr.Vector), &proof, nil
}

func (me *Pk) WriteTo(w io.Writer) (int64, error) {
	n, err := me.vk.WriteTo(w)
	if err != nil {
		return n, err
	}
	m, err := me.ccs.WriteTo(w)
	n += m
	if err != nil {
		return n, err
	}
	m, err = me.pk.WriteTo(w)
	return n + m, err
}

func (me *Pk) ReadFrom(r io.Reader) (int64, error) {
	me.ccs = groth16.NewCS(ecc.BN254)
	me.pk = groth16.NewProvingKey(ecc.BN254)
	n, err := me.vk.ReadFrom(r)
	if err != nil {
		return n, err
	}
	m, err := me.ccs.ReadFrom(r)
	n += m
	if err != nil {
		return n, err
	}
	m, err = me.pk.ReadFrom(r)
	return n + m, err
}
