// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// fracWords returns the number of fraction words needed to hold prec bits
// after the radix point.
func fracWords(prec int) int {
	if prec < 0 {
		prec = 0
	}
	return prec/_W + 1
}

// termWords returns the number of fraction words kept in the terms of a power
// series in x at precision prec. Terms are truncated to that many words
// before being multiplied again by x.
func termWords(prec int, x vector) int {
	return fracWords(prec) + x.intWords() + 1
}

// digitsToBits returns the number of bits needed to represent n digits in
// the given base.
func digitsToBits(n, base int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * math.Log2(float64(base))))
}

// bitsToDigits returns the number of digits in the given base needed to
// represent n bits.
func bitsToDigits(n, base int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / math.Log2(float64(base))))
}

// leadWords returns, for a non-zero x below one, the number of fraction
// words of x down to and including its most significant word, and 0
// otherwise.
func (x vector) leadWords() int {
	if len(x.mant) > 0 && len(x.mant) <= x.exp {
		return x.exp - len(x.mant) + 1
	}
	return 0
}

// wantWords returns the number of fraction words a value like x should carry
// at precision prec.
func (x vector) wantWords(prec int) int {
	return fracWords(prec) + x.leadWords()
}

// roundWords drops the n least significant words of x, rounding the
// magnitude half up on the most significant dropped bit.
func (x vector) roundWords(n int) vector {
	if n <= 0 {
		return x
	}
	if n > x.exp {
		n = x.exp
	}
	half := n <= len(x.mant) && x.mant[n-1]&_H != 0
	m := nat(nil).shr(x.mant, uint(n)*_W)
	if half {
		m = m.add(m, natOne)
	}
	x.mant = m
	x.exp -= n
	return x.norm()
}

// round returns x with at most the fraction words required by prec, rounding
// as needed. Values carrying a decimal exponent are left exact unless their
// mantissa grew past twice the requested precision, in which case the
// decimal exponent is folded into the binary fraction first.
func (x vector) round(prec int) vector {
	if x.tensExp != 0 && x.mant.bitLen() > 2*(prec+_W) {
		x = x.fold(prec)
	}
	x.prec = prec
	if w := x.wantWords(prec); x.exp > w {
		x = x.roundWords(x.exp - w)
	}
	return x
}

// changePrecision returns x with exactly the fraction words required by prec:
// it extends x with zero words or rounds it.
func (x vector) changePrecision(prec int) vector {
	x = x.round(prec)
	if w := x.wantWords(prec); x.exp < w {
		x = x.setExp(w)
	}
	return x
}

// fold returns x with its decimal exponent folded into the binary fraction,
// with tensExp == 0. Positive decimal exponents are folded exactly, negative
// ones by a division at precision prec.
func (x vector) fold(prec int) vector {
	switch {
	case x.tensExp > 0:
		x.mant = nat(nil).mul(x.mant, pow10(x.tensExp))
		x.tensExp = 0
	case x.tensExp < 0:
		d := vector{mant: pow10(-x.tensExp)}
		t := x
		t.tensExp = 0
		q, _, _ := divVec(t, d, prec)
		q.prec = x.prec
		x = q.round(prec)
	}
	return x
}

// dropTrailZeroes removes non-significant zeros from the representation of
// x: trailing zero fraction words, and decimal zeros of values with no
// fraction words and a negative decimal exponent.
func (x vector) dropTrailZeroes() vector {
	if len(x.mant) == 0 {
		x.exp = 0
		x.tensExp = 0
		return x
	}
	if n := x.mant.trailingZeroWords(); n > 0 && x.exp > 0 {
		if n > x.exp {
			n = x.exp
		}
		x = x.setExp(x.exp - n)
	}
	if x.exp == 0 {
		for x.tensExp < 0 {
			q, r := nat(nil).divW(x.mant, 10)
			if r != 0 {
				break
			}
			x.mant = q
			x.tensExp++
		}
	}
	return x
}

// significant reports whether x is non-zero and large enough to matter at
// its precision: |x| >= 2**-prec.
func (x vector) significant() bool {
	if len(x.mant) == 0 {
		return false
	}
	return x.ilog2() > -x.prec
}
