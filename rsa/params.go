//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markkurossi/fwrsa/mpa"
)

const (
	// DefaultBits specifies the default integer width in bits.
	DefaultBits = 2048
	// DefaultLimbs specifies the default integer width in limbs.
	DefaultLimbs = DefaultBits / mpa.LimbBits
)

var (
	// ErrorInvalidBits is returned if the configured width is not a
	// positive multiple of the limb size.
	ErrorInvalidBits = errors.New("rsa: invalid integer width")
)

// Variant specifies the buffer reuse strategy of the private key
// operation.
type Variant int

// Private key operation variants.
const (
	// LowRAM saves and restores the result accumulator around the
	// squaring step. The power accumulator is n+1 limbs wide.
	LowRAM Variant = iota
	// BigRAM squares the power accumulator in its own double-width
	// buffer and saves one copy per exponent bit.
	BigRAM
)

var variants = map[Variant]string{
	LowRAM: "lowram",
	BigRAM: "bigram",
}

func (v Variant) String() string {
	name, ok := variants[v]
	if ok {
		return name
	}
	return fmt.Sprintf("{Variant %d}", v)
}

// ParseVariant parses the variant name.
func ParseVariant(name string) (Variant, error) {
	for k, v := range variants {
		if strings.EqualFold(v, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("rsa: unknown variant '%s'", name)
}

// Params specify the engine parameters.
type Params struct {
	// Bits specifies the integer width in bits. It must be a positive
	// multiple of mpa.LimbBits.
	Bits int

	// Variant specifies the private key operation variant.
	Variant Variant
}

// NewParams returns new engine params object, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		Bits:    DefaultBits,
		Variant: LowRAM,
	}
}

// Limbs returns the integer width in limbs.
func (p *Params) Limbs() int {
	return p.Bits / mpa.LimbBits
}

// Validate checks that the params are valid.
func (p *Params) Validate() error {
	if p.Bits <= 0 || p.Bits%mpa.LimbBits != 0 {
		return fmt.Errorf("%w: %d bits", ErrorInvalidBits, p.Bits)
	}
	if _, ok := variants[p.Variant]; !ok {
		return fmt.Errorf("rsa: invalid variant %v", p.Variant)
	}
	return nil
}
