//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudo-random generator for
// test vectors and benchmark operands. The generator is a ChaCha20
// keystream keyed with the SHA-256 hash of a seed. It must not be used
// for key material.
package prg

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Reader implements io.Reader returning a deterministic keystream.
type Reader struct {
	cipher *chacha20.Cipher
	buf    [4]byte
}

// New creates a new Reader for the seed.
func New(seed []byte) *Reader {
	key := sha256.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint32 returns the next 32-bit value from the stream.
func (r *Reader) Uint32() uint32 {
	r.Read(r.buf[:])
	return binary.LittleEndian.Uint32(r.buf[:])
}

// Intn returns a value in [0, n). The value n must be positive.
func (r *Reader) Intn(n int) int {
	return int(r.Uint32() % uint32(n))
}

// Limbs fills dst with random limbs.
func (r *Reader) Limbs(dst []uint32) {
	for i := range dst {
		dst[i] = r.Uint32()
	}
}

// Modulus fills dst with a random odd value whose top limb is
// non-zero.
func (r *Reader) Modulus(dst []uint32) {
	r.Limbs(dst)
	if len(dst) == 0 {
		return
	}
	for dst[len(dst)-1] == 0 {
		dst[len(dst)-1] = r.Uint32()
	}
	dst[0] |= 1
}

// Sparse fills dst with random limbs and then clears limbs at random
// so that the value has a random number of significant limbs,
// including zero.
func (r *Reader) Sparse(dst []uint32) {
	r.Limbs(dst)
	top := r.Intn(len(dst) + 1)
	clear(dst[top:])
}
