//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"github.com/markkurossi/fwrsa/mpa"
)

// PrivOp computes base^exponent mod modulus with the binary
// square-and-multiply method, processing the exponent from the least
// significant bit. All arguments must have the state width and the
// modulus must be non-zero. The operation squares the power
// accumulator once for every exponent bit and multiplies it into the
// result for every set bit.
//
// The multiplication is conditional on the exponent bits so the
// running time depends on the exponent's Hamming weight. The operation
// does not provide side-channel protection for private exponents.
//
// The result is stored in the state and it is valid until the next
// operation.
func (s *State) PrivOp(base, exponent, modulus mpa.Int) mpa.Int {
	n := s.limbs

	// tmpC holds the powers of the base.
	copy(s.tmpC[:n], base[:n])

	// tmpA holds the result. It is reduced once so that exponent 0
	// gives 1 mod modulus.
	s.tmpA.SetUint64(1)
	s.mod(s.tmpA, modulus, s.tmpB)

	for i := 0; i < n*mpa.LimbBits; i++ {
		if exponent[i/mpa.LimbBits]&(1<<(i%mpa.LimbBits)) != 0 {
			copy(s.tmpB[:n], s.tmpA[:n])
			s.mul(s.tmpA, s.tmpB, s.tmpC)
			s.mod(s.tmpA, modulus, s.tmpB)
		}

		// Compute the next power of the base.
		switch s.variant {
		case BigRAM:
			copy(s.tmpB[:n], s.tmpC[:n])
			s.mul(s.tmpC, s.tmpB, s.tmpB)
			s.mod(s.tmpC, modulus, s.tmpB)

		default:
			copy(s.tmpB[:n], s.tmpA[:n]) // save result
			s.mul(s.tmpA, s.tmpC, s.tmpC)
			s.mod(s.tmpA, modulus, s.tmpC)
			copy(s.tmpC[:n], s.tmpA[:n])
			copy(s.tmpA[:n], s.tmpB[:n]) // restore result
		}
	}

	return s.tmpA[:n]
}
