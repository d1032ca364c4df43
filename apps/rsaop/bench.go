//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/markkurossi/fwrsa/mpa"
	"github.com/markkurossi/fwrsa/prg"
	"github.com/markkurossi/fwrsa/rsa"
	"github.com/markkurossi/fwrsa/timing"
)

func benchmark(params *rsa.Params, count int, seed string) error {
	limbs := params.Limbs()
	rnd := prg.New([]byte(seed))

	base := mpa.New(limbs)
	exp := mpa.New(limbs)
	mod := mpa.New(limbs)
	rnd.Limbs(base)
	rnd.Limbs(exp)
	rnd.Modulus(mod)

	fmt.Printf("%d-bit operands, %d rounds\n", params.Bits, count)

	t := timing.NewTiming("Muls", "Mods", "Scratch")

	for _, variant := range []rsa.Variant{rsa.LowRAM, rsa.BigRAM} {
		p := *params
		p.Variant = variant
		state, err := rsa.NewState(&p)
		if err != nil {
			return err
		}

		var pubDuration time.Duration
		for i := 0; i < count; i++ {
			start := time.Now()
			state.PubOp(base, mod)
			pubDuration += time.Since(start)
		}
		pubStats := state.Stats
		state.Stats.Reset()

		var privDuration time.Duration
		for i := 0; i < count; i++ {
			start := time.Now()
			state.PrivOp(base, exp, mod)
			privDuration += time.Since(start)
		}

		sample := t.Sample(variant.String(), []string{
			fmt.Sprintf("%d", pubStats.Muls+state.Stats.Muls),
			fmt.Sprintf("%d", pubStats.Mods+state.Stats.Mods),
			fmt.Sprintf("%d", state.ScratchLimbs()*mpa.LimbBytes),
		})
		sample.AbsSubSample("PubOp", pubDuration,
			fmt.Sprintf("%d", pubStats.Muls),
			fmt.Sprintf("%d", pubStats.Mods))
		sample.AbsSubSample("PrivOp", privDuration,
			fmt.Sprintf("%d", state.Stats.Muls),
			fmt.Sprintf("%d", state.Stats.Mods))
	}
	t.Print(os.Stdout)

	return nil
}
