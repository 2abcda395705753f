package zkpaillier

import (
	"github.com/consensys/gnark-crypto/ecc"

	"github.com/verenc/zkpaillier/circuits/biguint"
)

// BITS is the Paillier modulus size of the fixed production template.
const BITS = 1024

const DATA_CACHE_DIR = "data"
const PK_FILE = "PAILLIER.PK.BIN"
const VK_FILE = "PAILLIER.VK.BIN"

var FIELD = ecc.BN254.ScalarField()

// NumPublic returns the public-input count of a bits-bit relation: the limbs
// of n2, g, n and c, in that order.
func NumPublic(bits int) int {
	return 3*biguint.LimbCount(2*bits) + biguint.LimbCount(bits)
}
