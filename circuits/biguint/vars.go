// Centralizes the limb parameters and shared errors of the big-uint gadget.
package biguint

import "errors"

// W is the limb width in bits. Limbs are little-endian base-2^W digits of the
// represented integer. 32 keeps every carry-deferred product limb well below
// the BN254 scalar field even for 2048-bit operands.
const W = 32

var (
	ErrBound    = errors.New("biguint: bit bound must be positive")
	ErrNegative = errors.New("biguint: value is negative")
	ErrTooWide  = errors.New("biguint: value exceeds its declared bit bound")
)

// LimbCount returns the number of W-bit limbs backing a bound-bit value.
func LimbCount(bound int) int {
	return (bound + W - 1) / W
}
