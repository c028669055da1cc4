// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the word-level kernels used by nat. They operate on
// vectors of 32 bits words in base 2**32 and use 64 bits intermediate
// results for carries.

package bignum

import "math/bits"

// A Word is a single digit of a digit vector. Digits are stored in base 2**32.
type Word uint32

const (
	_W = 32      // word size in bits
	_B = 1 << _W // digit base
	_M = _B - 1  // digit mask
)

// top bit of a Word, used for rounding
const _H = Word(1 << (_W - 1))

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	t := uint64(x)*uint64(y) + uint64(c)
	return Word(t >> _W), Word(t)
}

// q = (u1<<_W + u0)/v, r = (u1<<_W + u0)%v, requires u1 < v
func divWW(u1, u0, v Word) (q, r Word) {
	t := uint64(u1)<<_W | uint64(u0)
	return Word(t / uint64(v)), Word(t % uint64(v))
}

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		t := uint64(x[i]) + uint64(y[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// The resulting borrow b is either 0 or 1.
func subVV(z, x, y []Word) (b Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		t := uint64(x[i]) - uint64(y[i]) - uint64(b)
		z[i] = Word(t)
		b = Word(t >> 63)
	}
	return
}

func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

func subVW(z, x []Word, y Word) (b Word) {
	b = y
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i]) - uint64(b)
		z[i] = Word(t)
		b = Word(t >> 63)
	}
	return
}

// z = x*y + r, returns the carry out.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// z += x*y, returns the carry out.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// z = (xn<<(_W*len(x)) + x)/y, returns the remainder. Requires xn < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return
}

// z = x << s for 0 < s < _W, returns the bits shifted out of the top word.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[len(z)-1]
	c = w1 >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return
}

// z = x >> s for 0 < s < _W, returns the bits shifted out of the bottom word
// in the high bits of c.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	ŝ := _W - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[len(z)-1] = w1 >> s
	return
}

// nlz returns the number of leading zero bits in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}
