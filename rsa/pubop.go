//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"github.com/markkurossi/fwrsa/mpa"
)

// PubOp computes base^65537 mod modulus. The base and modulus must
// have the state width and the modulus must be non-zero. The
// exponentiation squares the base 16 times and multiplies the result
// with the base: the operation always does 17 multiplications and 17
// reductions.
//
// The result is stored in the state and it is valid until the next
// operation.
func (s *State) PubOp(base, modulus mpa.Int) mpa.Int {
	n := s.limbs

	// tmpB = base^(2^16) mod modulus
	copy(s.tmpB[:n], base[:n])
	for i := 0; i < pubSquarings; i++ {
		s.mul(s.tmpA, s.tmpB, s.tmpB)
		s.mod(s.tmpA, modulus, s.tmpB)
		copy(s.tmpB[:n], s.tmpA[:n])
	}

	// tmpA = tmpB * base mod modulus
	s.mul(s.tmpA, s.tmpB, base)
	s.mod(s.tmpA, modulus, s.tmpB)

	return s.tmpA[:n]
}
