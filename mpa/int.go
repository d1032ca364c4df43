//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// Limb is one 32-bit word of a multi-precision integer.
type Limb = uint32

const (
	// LimbBits specifies the number of bits in a limb.
	LimbBits = 32
	// LimbBytes specifies the number of bytes in a limb.
	LimbBytes = LimbBits / 8
)

var (
	// ErrOverflow is returned when a value does not fit into the
	// integer width.
	ErrOverflow = errors.New("mpa: value does not fit integer width")
)

// Int implements a fixed-width unsigned integer. The limbs are stored
// least significant limb first and the integer value is in the range
// [0, 2^(32*len(z))).
type Int []Limb

// New creates a new zero Int with the given number of limbs.
func New(limbs int) Int {
	return make(Int, limbs)
}

// Bits returns the width of z in bits.
func (z Int) Bits() int {
	return len(z) * LimbBits
}

// Set copies x into z and returns z. The limbs of x above the width
// of z are ignored and the limbs of z above the width of x are
// cleared.
func (z Int) Set(x Int) Int {
	n := copy(z, x)
	clear(z[n:])
	return z
}

// SetUint64 sets z to x and returns z.
func (z Int) SetUint64(x uint64) Int {
	clear(z)
	for i := 0; i < len(z) && x != 0; i++ {
		z[i] = Limb(x)
		x >>= LimbBits
	}
	return z
}

// SetBytes interprets data as a big-endian unsigned integer and sets
// z to that value. The function returns ErrOverflow if the value does
// not fit into the width of z; leading zero bytes are accepted.
func (z Int) SetBytes(data []byte) (Int, error) {
	clear(z)
	for i := 0; i < len(data); i++ {
		b := data[len(data)-1-i]
		limb := i / LimbBytes
		if limb >= len(z) {
			if b != 0 {
				return nil, ErrOverflow
			}
			continue
		}
		z[limb] |= Limb(b) << (8 * (i % LimbBytes))
	}
	return z, nil
}

// FillBytes sets buf to the big-endian value of z, zero-padded on the
// left. The function returns ErrOverflow if buf is too short for the
// value.
func (z Int) FillBytes(buf []byte) ([]byte, error) {
	clear(buf)
	for i := 0; i < len(z)*LimbBytes; i++ {
		b := byte(z[i/LimbBytes] >> (8 * (i % LimbBytes)))
		if i >= len(buf) {
			if b != 0 {
				return nil, ErrOverflow
			}
			continue
		}
		buf[len(buf)-1-i] = b
	}
	return buf, nil
}

// Bytes returns the big-endian value of z in len(z)*4 bytes.
func (z Int) Bytes() []byte {
	buf := make([]byte, len(z)*LimbBytes)
	for i, limb := range z {
		ofs := len(buf) - (i+1)*LimbBytes
		buf[ofs] = byte(limb >> 24)
		buf[ofs+1] = byte(limb >> 16)
		buf[ofs+2] = byte(limb >> 8)
		buf[ofs+3] = byte(limb)
	}
	return buf
}

// SetBig sets z to x and returns z. The function returns ErrOverflow
// if x is negative or it does not fit into the width of z.
func (z Int) SetBig(x *big.Int) (Int, error) {
	if x.Sign() < 0 {
		return nil, ErrOverflow
	}
	return z.SetBytes(x.Bytes())
}

// Big returns z as a big.Int.
func (z Int) Big() *big.Int {
	return new(big.Int).SetBytes(z.Bytes())
}

// Cmp compares z and x and returns -1, 0, 1 if z is smaller, equal,
// or greater than x. The integers can have different widths.
func (z Int) Cmp(x Int) int {
	for i := max(len(z), len(x)) - 1; i >= 0; i-- {
		var zl, xl Limb
		if i < len(z) {
			zl = z[i]
		}
		if i < len(x) {
			xl = x[i]
		}
		if zl < xl {
			return -1
		}
		if zl > xl {
			return 1
		}
	}
	return 0
}

// IsZero tests if z is zero.
func (z Int) IsZero() bool {
	for _, limb := range z {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Bit returns the value of the i'th bit of z.
func (z Int) Bit(i int) uint {
	if i < 0 || i >= len(z)*LimbBits {
		return 0
	}
	return uint(z[i/LimbBits]>>(i%LimbBits)) & 1
}

// BitLen returns the length of the value of z in bits.
func (z Int) BitLen() int {
	for i := len(z) - 1; i >= 0; i-- {
		if z[i] != 0 {
			return i*LimbBits + bits.Len32(z[i])
		}
	}
	return 0
}

// OnesCount returns the number of one bits in z.
func (z Int) OnesCount() int {
	var count int
	for _, limb := range z {
		count += bits.OnesCount32(limb)
	}
	return count
}

func (z Int) String() string {
	top := len(z) - 1
	for top > 0 && z[top] == 0 {
		top--
	}
	if top < 0 {
		return "0"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%x", z[top])
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", z[i])
	}
	return sb.String()
}
