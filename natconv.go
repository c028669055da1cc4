// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = len(digits)

// maxPow returns (b**n, n) such that b**n is the largest power b**n <= _M.
// For instance maxPow(10) == (1e9, 9) for _W == 32.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1 // assuming b <= _M
	for max := _M / b; p <= max; {
		// p == b**n && p <= max
		p *= b
		n++
	}
	// p == b**n && p <= _M
	return
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}

// digitValue returns the value of the digit ch, or MaxBase if ch is not a
// digit in any supported base. Letters are case insensitive.
func digitValue(ch byte) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'z':
		return int(ch - 'a' + 10)
	case 'A' <= ch && ch <= 'Z':
		return int(ch - 'A' + 10)
	}
	return MaxBase
}

// setDigits sets z to the value of the digit values ds, most significant
// first, in the given base.
func (z nat) setDigits(ds []byte, base int) nat {
	b := Word(base)
	bn, n := maxPow(b)
	z = z[:0]
	di := Word(0)
	i := 0
	for _, d := range ds {
		di = di*b + Word(d)
		i++
		// if di is "full", add it to the result
		if i == n {
			z = z.mulAddWW(z, bn, di)
			di = 0
			i = 0
		}
	}
	if i > 0 {
		z = z.mulAddWW(z, pow(b, i), di)
	}
	return z.norm()
}

// utoa converts x to an ASCII representation in the given base;
// base must be between 2 and MaxBase, inclusive.
func (x nat) utoa(base int) []byte {
	return x.itoa(false, base)
}

// itoa is like utoa but it prepends a '-' if neg && x != 0.
func (x nat) itoa(neg bool, base int) []byte {
	if base < 2 || base > MaxBase {
		panic("invalid base")
	}

	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	// allocate buffer for conversion
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 1 // off by 1 at most
	if neg {
		i++
	}
	s := make([]byte, i)

	b := Word(base)
	bb, ndigits := maxPow(b)

	// preserve x, create local copy for use by convertWords
	q := nat(nil).set(x)

	// convert q to string s in base b
	q.convertWords(s, b, ndigits, bb)

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i = 0
	for s[i] == '0' {
		i++
	}

	if neg {
		i--
		s[i] = '-'
	}

	return s[i:]
}

// convertWords converts q to s in base b, extracting ndigits digits at a time
// by repeated division by bb = b**ndigits. q is overwritten.
func (q nat) convertWords(s []byte, b Word, ndigits int, bb Word) {
	i := len(s)
	var r Word
	for len(q) > 0 {
		// extract least significant, base bb "digit"
		q, r = q.divW(q, bb)
		for j := 0; j < ndigits && i > 0; j++ {
			i--
			s[i] = digits[r%b]
			r /= b
		}
	}

	// prepend high-order zeros
	for i > 0 { // while need more leading zeros
		i--
		s[i] = '0'
	}
}
