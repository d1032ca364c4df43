//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package signature

import (
	"bytes"
	"fmt"

	"github.com/markkurossi/fwrsa/mpa"
	"github.com/markkurossi/fwrsa/rsa"
	"github.com/markkurossi/text/superscript"
)

// Verifier recovers and verifies signatures with a public key. A
// Verifier owns its engine state and it must not be used concurrently.
type Verifier struct {
	Verbose bool

	key   *PublicKey
	state *rsa.State
	sig   mpa.Int
	block []byte
}

// NewVerifier creates a new verifier for the public key.
func NewVerifier(key *PublicKey) (*Verifier, error) {
	params := rsa.NewParams()
	params.Bits = key.Bits()

	state, err := rsa.NewState(params)
	if err != nil {
		return nil, err
	}
	return &Verifier{
		key:   key,
		state: state,
		sig:   mpa.New(len(key.N)),
		block: make([]byte, key.Size()),
	}, nil
}

// Debugf prints debug output if verbose output is enabled.
func (v *Verifier) Debugf(format string, a ...interface{}) {
	if !v.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Recover computes sig^65537 mod N and returns it as a big-endian
// block of the key size. The returned block is valid until the next
// call of the verifier.
func (v *Verifier) Recover(sig []byte) ([]byte, error) {
	_, err := v.sig.SetBytes(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorInvalidSignature, err)
	}
	if v.sig.Cmp(v.key.N) >= 0 {
		return nil, ErrorInvalidSignature
	}
	r := v.state.PubOp(v.sig, v.key.N)

	_, err = r.FillBytes(v.block)
	if err != nil {
		return nil, err
	}
	v.Debugf("s%s mod n: %x\n", superscript.Itoa(rsa.PublicExponent), v.block)

	return v.block, nil
}

// Verify recovers the signature and compares it with the expected
// block. A shorter expected block is compared as a big-endian value
// with leading zero bytes.
func (v *Verifier) Verify(sig, expected []byte) bool {
	block, err := v.Recover(sig)
	if err != nil {
		v.Debugf("recover failed: %v\n", err)
		return false
	}
	if len(expected) > len(block) {
		return false
	}
	pad := len(block) - len(expected)
	for _, b := range block[:pad] {
		if b != 0 {
			return false
		}
	}
	return bytes.Equal(block[pad:], expected)
}
