//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/fwrsa/mpa"
	"github.com/markkurossi/fwrsa/rsa"
	"github.com/markkurossi/text/superscript"
)

func main() {
	bits := flag.Int("bits", rsa.DefaultBits, "integer width in bits")
	variant := flag.String("variant", rsa.LowRAM.String(),
		"private key operation variant: lowram, bigram")
	pub := flag.Bool("pub", false, "compute base^65537 mod modulus")
	priv := flag.Bool("priv", false, "compute base^exp mod modulus")
	base := flag.String("base", "", "base in hex")
	exp := flag.String("exp", "", "private exponent in hex")
	mod := flag.String("mod", "", "modulus in hex")
	bench := flag.Bool("bench", false, "benchmark engine operations")
	count := flag.Int("n", 5, "number of benchmark rounds")
	seed := flag.String("seed", "rsaop", "benchmark operand seed")
	selftest := flag.Bool("selftest", false, "run sign/verify self test")
	verbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	params := rsa.NewParams()
	params.Bits = *bits
	v, err := rsa.ParseVariant(*variant)
	if err != nil {
		log.Fatal(err)
	}
	params.Variant = v
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	switch {
	case *pub || *priv:
		err = compute(params, *pub, *base, *exp, *mod, *verbose)
	case *bench:
		err = benchmark(params, *count, *seed)
	case *selftest:
		err = selfTest(params, *verbose)
	default:
		fmt.Printf("no operation specified\n")
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compute(params *rsa.Params, pub bool, base, exp, mod string,
	verbose bool) error {

	limbs := params.Limbs()
	b, err := parseInt(base, limbs, "base")
	if err != nil {
		return err
	}
	m, err := parseInt(mod, limbs, "modulus")
	if err != nil {
		return err
	}
	if m.IsZero() {
		return fmt.Errorf("modulus is zero")
	}
	state, err := rsa.NewState(params)
	if err != nil {
		return err
	}

	var r mpa.Int
	var label string
	if pub {
		label = "b" + superscript.Itoa(rsa.PublicExponent)
		r = state.PubOp(b, m)
	} else {
		e, err := parseInt(exp, limbs, "exponent")
		if err != nil {
			return err
		}
		label = "bᵉ"
		r = state.PrivOp(b, e, m)
	}
	if verbose {
		fmt.Printf("%s mod m: %d muls, %d mods, %d scratch limbs\n",
			label, state.Stats.Muls, state.Stats.Mods, state.ScratchLimbs())
	}
	fmt.Printf("%v\n", r)
	return nil
}

func parseInt(val string, limbs int, name string) (mpa.Int, error) {
	if len(val) == 0 {
		return nil, fmt.Errorf("no %s specified", name)
	}
	x, ok := new(big.Int).SetString(val, 16)
	if !ok {
		return nil, fmt.Errorf("invalid %s '%s'", name, val)
	}
	v, err := mpa.New(limbs).SetBig(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
