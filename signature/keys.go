//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package signature implements RSA signature recovery and signing on
// top of the fixed-width rsa engine. The package converts the
// big-endian signature octet strings into engine integers and back.
// It does not interpret the signature blocks: accepting or rejecting
// a recovered block is a plain comparison with the block the caller
// expects.
package signature

import (
	"errors"
	"fmt"

	"github.com/markkurossi/fwrsa/mpa"
)

var (
	// ErrorKeySize is returned if the key does not match the
	// configured integer width.
	ErrorKeySize = errors.New("signature: invalid key size")

	// ErrorMessageTooLong is returned if the message to sign is not
	// smaller than the modulus.
	ErrorMessageTooLong = errors.New("signature: message too long")

	// ErrorInvalidSignature is returned if the signature is not
	// smaller than the modulus.
	ErrorInvalidSignature = errors.New("signature: invalid signature")
)

// PublicKey implements an RSA public key with the fixed public
// exponent 65537.
type PublicKey struct {
	N mpa.Int
}

// NewPublicKey creates a public key from the big-endian modulus for
// the integer width bits.
func NewPublicKey(modulus []byte, bits int) (*PublicKey, error) {
	if bits <= 0 || bits%mpa.LimbBits != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrorKeySize, bits)
	}
	n, err := mpa.New(bits / mpa.LimbBits).SetBytes(modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus: %w", ErrorKeySize, err)
	}
	if n.IsZero() {
		return nil, fmt.Errorf("%w: zero modulus", ErrorKeySize)
	}
	return &PublicKey{
		N: n,
	}, nil
}

// Bits returns the key width in bits.
func (k *PublicKey) Bits() int {
	return k.N.Bits()
}

// Size returns the signature size in bytes.
func (k *PublicKey) Size() int {
	return len(k.N) * mpa.LimbBytes
}

// PrivateKey implements an RSA private key.
type PrivateKey struct {
	PublicKey
	D mpa.Int
}

// NewPrivateKey creates a private key from the big-endian modulus
// and private exponent for the integer width bits.
func NewPrivateKey(modulus, exponent []byte, bits int) (*PrivateKey, error) {
	pub, err := NewPublicKey(modulus, bits)
	if err != nil {
		return nil, err
	}
	d, err := mpa.New(len(pub.N)).SetBytes(exponent)
	if err != nil {
		return nil, fmt.Errorf("%w: private exponent: %w", ErrorKeySize, err)
	}
	return &PrivateKey{
		PublicKey: *pub,
		D:         d,
	}, nil
}

// Public returns the public key of the private key.
func (k *PrivateKey) Public() *PublicKey {
	return &k.PublicKey
}
