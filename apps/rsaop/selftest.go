//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/markkurossi/fwrsa/rsa"
	"github.com/markkurossi/fwrsa/signature"
)

// newKey creates a test key pair for the integer width. The key
// generation is for self testing only.
func newKey(bits int) (*signature.PrivateKey, error) {
	e := big.NewInt(rsa.PublicExponent)
	one := big.NewInt(1)
	for {
		p, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := rand.Prime(rand.Reader, bits-bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		phi := new(big.Int).Mul(new(big.Int).Sub(p, one),
			new(big.Int).Sub(q, one))
		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}
		n := new(big.Int).Mul(p, q)
		return signature.NewPrivateKey(n.Bytes(), d.Bytes(), bits)
	}
}

func selfTest(params *rsa.Params, verbose bool) error {
	if params.Bits < 64 {
		return fmt.Errorf("selftest needs at least 64 bits, got %d",
			params.Bits)
	}
	key, err := newKey(params.Bits)
	if err != nil {
		return err
	}
	signer, err := signature.NewSigner(key, params.Variant)
	if err != nil {
		return err
	}
	signer.Verbose = verbose

	verifier, err := signature.NewVerifier(key.Public())
	if err != nil {
		return err
	}
	verifier.Verbose = verbose

	msg := make([]byte, key.Size()-1)
	if _, err := rand.Read(msg); err != nil {
		return err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return err
	}
	expected := new(big.Int).Exp(new(big.Int).SetBytes(msg), key.D.Big(),
		key.N.Big())
	if !bytes.Equal(expected.FillBytes(make([]byte, key.Size())), sig) {
		return fmt.Errorf("signature mismatch")
	}
	if !verifier.Verify(sig, msg) {
		return fmt.Errorf("signature verification failed")
	}
	sig[len(sig)-1] ^= 0x80
	if verifier.Verify(sig, msg) {
		return fmt.Errorf("tampered signature verified")
	}
	fmt.Printf("%d-bit %v selftest: ok\n", params.Bits, params.Variant)
	return nil
}
