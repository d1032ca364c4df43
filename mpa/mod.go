//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpa

const topBit Limb = 1 << (LimbBits - 1)

// Mod sets x to x mod m. The modulus m has n limbs and x must have 2n
// limbs. The argument tmp is a scratch register of at least n+1
// limbs; its contents are destroyed. After the reduction the residue
// is in x[:n] and x[n:] is zero. The modulus must be non-zero, the
// result is undefined otherwise.
//
// The reduction is a binary long division that keeps only the running
// remainder: the modulus is aligned to the top of x and repeatedly
// subtracted from x and shifted right one bit.
func Mod(x, m, tmp Int) {
	n := len(m)
	x = x[:2*n]
	tmp = tmp[:n+1]

	// Align the modulus as far left as possible.
	load(tmp, m)
	bitsh := LimbBits
	limbsh := n - 1
	for tmp[n]&topBit == 0 {
		for i := n; i > 0; i-- {
			tmp[i] = tmp[i]<<1 | tmp[i-1]>>(LimbBits-1)
		}
		// tmp[0] is still zero.
		bitsh++
	}

	for {
		if cmpWindow(x[limbsh:limbsh+n+1], tmp) >= 0 {
			subWindow(x, limbsh, tmp)
		}
		if bitsh == 0 {
			if limbsh == 0 {
				break
			}
			load(tmp, m)
			bitsh = LimbBits
			limbsh--
		} else {
			for i := 0; i < n; i++ {
				tmp[i] = tmp[i]>>1 | tmp[i+1]<<(LimbBits-1)
			}
			tmp[n] >>= 1
			bitsh--
		}
	}
}

// load sets tmp to m shifted left by one limb.
func load(tmp, m Int) {
	tmp[0] = 0
	copy(tmp[1:], m)
}

// cmpWindow compares the equal-width integers w and tmp.
func cmpWindow(w, tmp Int) int {
	for i := len(tmp) - 1; i >= 0; i-- {
		if w[i] < tmp[i] {
			return -1
		}
		if w[i] > tmp[i] {
			return 1
		}
	}
	return 0
}

// subWindow subtracts tmp from x[ofs:ofs+len(tmp)] and propagates the
// borrow to the top of x.
func subWindow(x Int, ofs int, tmp Int) {
	var t int64
	for i := 0; i < len(tmp); i++ {
		t += int64(x[ofs+i])
		t -= int64(tmp[i])
		x[ofs+i] = Limb(t)
		t >>= LimbBits
	}
	for i := ofs + len(tmp); i < len(x); i++ {
		t += int64(x[i])
		x[i] = Limb(t)
		t >>= LimbBits
	}
}
