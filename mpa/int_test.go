//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mpa

import (
	"bytes"
	"math/big"
	"testing"
)

var bytesTests = []struct {
	limbs int
	data  []byte
	value Int
	err   error
}{
	{
		limbs: 2,
		data:  []byte{0x01},
		value: Int{0x00000001, 0x00000000},
	},
	{
		limbs: 2,
		data:  []byte{0x01, 0x02, 0x03, 0x04, 0x05},
		value: Int{0x02030405, 0x00000001},
	},
	{
		limbs: 2,
		data:  []byte{0x00, 0x00, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
		value: Int{0xbbaa9988, 0xffeeddcc},
	},
	{
		limbs: 2,
		data:  []byte{0x01, 0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
		err:   ErrOverflow,
	},
	{
		limbs: 1,
		data:  nil,
		value: Int{0},
	},
}

func TestSetBytes(t *testing.T) {
	for idx, test := range bytesTests {
		v, err := New(test.limbs).SetBytes(test.data)
		if err != test.err {
			t.Errorf("test-%v: SetBytes(%x): err=%v, expected %v",
				idx, test.data, err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if v.Cmp(test.value) != 0 {
			t.Errorf("test-%v: SetBytes(%x)=%v, expected %v",
				idx, test.data, v, test.value)
		}
	}
}

func TestBytes(t *testing.T) {
	v := Int{0x05060708, 0x01020304}
	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(v.Bytes(), expected) {
		t.Errorf("Bytes()=%x, expected %x", v.Bytes(), expected)
	}

	buf, err := v.FillBytes(make([]byte, 10))
	if err != nil {
		t.Fatalf("FillBytes failed: %v", err)
	}
	if !bytes.Equal(buf, append([]byte{0, 0}, expected...)) {
		t.Errorf("FillBytes()=%x", buf)
	}

	_, err = v.FillBytes(make([]byte, 7))
	if err != ErrOverflow {
		t.Errorf("FillBytes to short buffer: err=%v", err)
	}

	buf, err = Int{0x00ffffff, 0}.FillBytes(make([]byte, 3))
	if err != nil {
		t.Fatalf("FillBytes failed: %v", err)
	}
	if !bytes.Equal(buf, []byte{0xff, 0xff, 0xff}) {
		t.Errorf("FillBytes()=%x", buf)
	}
}

func TestBig(t *testing.T) {
	x, ok := new(big.Int).SetString("123456789abcdef0fedcba987654321", 16)
	if !ok {
		t.Fatal("SetString failed")
	}
	v, err := New(4).SetBig(x)
	if err != nil {
		t.Fatalf("SetBig failed: %v", err)
	}
	if v.Big().Cmp(x) != 0 {
		t.Errorf("Big()=%v, expected %v", v.Big(), x)
	}
	if v.String() != "123456789abcdef0fedcba987654321" {
		t.Errorf("String()=%v", v)
	}
	if v.BitLen() != x.BitLen() {
		t.Errorf("BitLen()=%v, expected %v", v.BitLen(), x.BitLen())
	}
	for i := 0; i < v.Bits(); i++ {
		if v.Bit(i) != x.Bit(i) {
			t.Errorf("Bit(%v)=%v, expected %v", i, v.Bit(i), x.Bit(i))
		}
	}

	_, err = New(3).SetBig(x)
	if err != ErrOverflow {
		t.Errorf("SetBig to narrow Int: err=%v", err)
	}
	_, err = New(4).SetBig(big.NewInt(-1))
	if err != ErrOverflow {
		t.Errorf("SetBig negative: err=%v", err)
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b Int
		r    int
	}{
		{Int{1}, Int{1, 0, 0}, 0},
		{Int{1, 1}, Int{2}, 1},
		{Int{0xffffffff}, Int{0, 1}, -1},
		{Int{}, Int{0}, 0},
	}
	for _, test := range tests {
		if r := test.a.Cmp(test.b); r != test.r {
			t.Errorf("Cmp(%v,%v)=%v, expected %v", test.a, test.b, r, test.r)
		}
	}
}

func TestMisc(t *testing.T) {
	v := New(3).SetUint64(0x1_0000_0003)
	if v.Cmp(Int{3, 1}) != 0 {
		t.Errorf("SetUint64=%v", v)
	}
	if v.IsZero() {
		t.Errorf("IsZero(%v)", v)
	}
	if v.OnesCount() != 3 {
		t.Errorf("OnesCount(%v)=%v", v, v.OnesCount())
	}
	if !New(3).IsZero() {
		t.Errorf("New is not zero")
	}
	w := New(2).Set(Int{1, 2, 3})
	if w.Cmp(Int{1, 2}) != 0 {
		t.Errorf("Set=%v", w)
	}
	if New(2).String() != "0" {
		t.Errorf("String()=%q", New(2).String())
	}
}
