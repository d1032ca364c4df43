//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package signature

import (
	"fmt"

	"github.com/markkurossi/fwrsa/mpa"
	"github.com/markkurossi/fwrsa/rsa"
)

// Signer creates signatures with a private key. A Signer owns its
// engine state and it must not be used concurrently. The signing
// time depends on the private exponent.
type Signer struct {
	Verbose bool

	key   *PrivateKey
	state *rsa.State
	msg   mpa.Int
}

// NewSigner creates a new signer for the private key. The variant
// selects the buffer strategy of the private key operation.
func NewSigner(key *PrivateKey, variant rsa.Variant) (*Signer, error) {
	params := rsa.NewParams()
	params.Bits = key.Bits()
	params.Variant = variant

	state, err := rsa.NewState(params)
	if err != nil {
		return nil, err
	}
	return &Signer{
		key:   key,
		state: state,
		msg:   mpa.New(len(key.N)),
	}, nil
}

// Debugf prints debug output if verbose output is enabled.
func (s *Signer) Debugf(format string, a ...interface{}) {
	if !s.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Sign computes msg^D mod N and returns it as a big-endian signature
// of the key size. The message is a big-endian integer that must be
// smaller than the modulus.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	_, err := s.msg.SetBytes(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrorMessageTooLong, err)
	}
	if s.msg.Cmp(s.key.N) >= 0 {
		return nil, ErrorMessageTooLong
	}
	s.state.Stats.Reset()
	r := s.state.PrivOp(s.msg, s.key.D, s.key.N)

	sig := make([]byte, s.key.Size())
	if _, err := r.FillBytes(sig); err != nil {
		return nil, err
	}
	s.Debugf("m^d mod n: %x (%d muls)\n", sig, s.state.Stats.Muls)

	return sig, nil
}
