//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package rsa implements RSA public and private key modular
// exponentiation over fixed-width integers. All working memory is
// allocated when the State is created; the operations themselves do
// not allocate.
//
// The private key operation is not constant-time: its multiplication
// count depends on the exponent bits.
package rsa

import (
	"github.com/markkurossi/fwrsa/mpa"
)

const (
	// PublicExponent specifies the fixed public exponent 2^16+1.
	PublicExponent = 65537

	pubSquarings = 16
)

// Stats count the arithmetic operations of a State.
type Stats struct {
	Muls uint64
	Mods uint64
}

// Reset clears the counters.
func (s *Stats) Reset() {
	s.Muls = 0
	s.Mods = 0
}

// State implements the scratch context of the modular exponentiation
// operations. The returned results point into the state buffers and
// remain valid until the next operation on the same State. A State
// must not be used concurrently from multiple goroutines, and the
// operands must not alias the results of the same State.
type State struct {
	Stats Stats

	limbs   int
	variant Variant

	// tmpA is the double-width accumulator holding the result.
	tmpA mpa.Int
	// tmpB is the reduction shift register and the save slot.
	tmpB mpa.Int
	// tmpC holds the powers of the base: limbs+1 limbs for LowRAM,
	// 2*limbs for BigRAM.
	tmpC mpa.Int
}

// NewState creates a new State for the params.
func NewState(params *Params) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := params.Limbs()

	state := &State{
		limbs:   n,
		variant: params.Variant,
		tmpA:    mpa.New(2 * n),
		tmpB:    mpa.New(n + 1),
	}
	switch params.Variant {
	case BigRAM:
		state.tmpC = mpa.New(2 * n)
	default:
		state.tmpC = mpa.New(n + 1)
	}
	return state, nil
}

// Limbs returns the integer width of the state in limbs.
func (s *State) Limbs() int {
	return s.limbs
}

// Bits returns the integer width of the state in bits.
func (s *State) Bits() int {
	return s.limbs * mpa.LimbBits
}

// Variant returns the private key operation variant of the state.
func (s *State) Variant() Variant {
	return s.variant
}

// ScratchLimbs returns the total size of the state buffers in limbs.
func (s *State) ScratchLimbs() int {
	return len(s.tmpA) + len(s.tmpB) + len(s.tmpC)
}

func (s *State) mul(z, x, y mpa.Int) {
	mpa.Mul(z, x[:s.limbs], y[:s.limbs])
	s.Stats.Muls++
}

func (s *State) mod(x, m, tmp mpa.Int) {
	mpa.Mod(x, m[:s.limbs], tmp)
	s.Stats.Mods++
}
