//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/markkurossi/fwrsa/prg"
)

var mulTests = []struct {
	a Int
	b Int
	r Int
}{
	{
		a: Int{0x00000002, 0x00000000},
		b: Int{0x00000003, 0x00000000},
		r: Int{0x00000006, 0x00000000, 0x00000000, 0x00000000},
	},
	{
		a: Int{0xffffffff, 0x00000000},
		b: Int{0xffffffff, 0x00000000},
		r: Int{0x00000001, 0xfffffffe, 0x00000000, 0x00000000},
	},
	{
		a: Int{0xffffffff, 0xffffffff},
		b: Int{0xffffffff, 0xffffffff},
		r: Int{0x00000001, 0x00000000, 0xfffffffe, 0xffffffff},
	},
	{
		a: Int{0x00000000, 0x00000001},
		b: Int{0x00000000, 0x00000001},
		r: Int{0x00000000, 0x00000000, 0x00000001, 0x00000000},
	},
	{
		a: Int{0x12345678, 0x9abcdef0},
		b: Int{0x00000000, 0x00000000},
		r: Int{0x00000000, 0x00000000, 0x00000000, 0x00000000},
	},
}

func TestMul(t *testing.T) {
	for idx, test := range mulTests {
		r := New(4)
		Mul(r, test.a, test.b)
		if r.Cmp(test.r) != 0 {
			t.Errorf("test-%v: %v*%v=%v, expected %v",
				idx, test.a, test.b, r, test.r)
		}
	}
}

func TestMulClearsProduct(t *testing.T) {
	r := Int{1, 2, 3, 4, 5, 6}
	Mul(r, Int{7, 0, 0}, Int{6, 0, 0})
	if r.Cmp(Int{42}) != 0 {
		t.Errorf("7*6=%v", r)
	}
}

func TestMulRandom(t *testing.T) {
	rnd := prg.New([]byte("TestMulRandom"))

	for _, limbs := range []int{1, 2, 3, 4, 8, 64} {
		t.Run(fmt.Sprintf("%d", limbs*LimbBits), func(t *testing.T) {
			a := New(limbs)
			b := New(limbs)
			r := New(2 * limbs)
			for i := 0; i < 200; i++ {
				rnd.Sparse(a)
				rnd.Sparse(b)
				Mul(r, a, b)

				expected := new(big.Int).Mul(a.Big(), b.Big())
				if r.Big().Cmp(expected) != 0 {
					t.Fatalf("%v*%v=%v, expected %x", a, b, r, expected)
				}
			}
		})
	}
}

func BenchmarkMul2048(b *testing.B) {
	rnd := prg.New(nil)
	x := New(64)
	y := New(64)
	r := New(128)
	rnd.Limbs(x)
	rnd.Limbs(y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Mul(r, x, y)
	}
}
