//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpa

// Mul sets z to x*y. The operands x and y must have the same width n
// and z must have 2n limbs. The product z is cleared before the
// multiplication so it must not overlap x or y.
func Mul(z, x, y Int) {
	n := len(x)
	z = z[:2*n]
	clear(z)

	for i := 0; i < n; i++ {
		// Add the partial product x[i]*y into z[i:].
		var c uint64
		for j := 0; j < n; j++ {
			r := uint64(x[i])*uint64(y[j]) + c + uint64(z[i+j])
			z[i+j] = Limb(r)
			c = r >> LimbBits
		}
		for j := i + n; j < 2*n; j++ {
			r := uint64(z[j]) + c
			z[j] = Limb(r)
			c = r >> LimbBits
		}
	}
}
