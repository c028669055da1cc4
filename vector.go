// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math"
)

const debugNumber = false // enable for debugging

// A vector is a signed digit vector, the internal representation of every
// Number. Its value is
//
//	(-1)**neg * mant * 2**(-_W*exp) * 10**tensExp
//
// The lowest exp words of mant are the fractional part. mant is kept
// normalized, so len(mant) may be smaller than exp for values below one.
// prec is the number of significant bits requested for the value and is only
// used by precision management; zero is never negative.
//
// vectors have value semantics: operations return new vectors and never
// modify their operands' words.
type vector struct {
	mant    nat
	exp     int
	tensExp int
	prec    int
	neg     bool
}

// newVector returns the integer vector for x.
func newVector(x int64) vector {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return vector{mant: nat(nil).setUint64(u), neg: x < 0}
}

// newVectorFloat64 returns a vector with the exact value of f, which must be
// finite.
func newVectorFloat64(f float64) vector {
	if f == 0 {
		return vector{}
	}
	fr, e := math.Frexp(f) // f = fr * 2**e, 0.5 <= |fr| < 1
	m := uint64(math.Ldexp(math.Abs(fr), 53))
	z := vector{mant: nat(nil).setUint64(m), neg: f < 0}
	return z.scale2(e - 53)
}

func (x vector) clone() vector {
	x.mant = nat(nil).set(x.mant)
	return x
}

func (x vector) isZero() bool {
	return len(x.mant) == 0
}

// sign returns -1, 0 or 1.
func (x vector) sign() int {
	switch {
	case len(x.mant) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// norm normalizes the mantissa and clears the sign of zero.
func (x vector) norm() vector {
	x.mant = x.mant.norm()
	if len(x.mant) == 0 {
		x.neg = false
	}
	return x
}

func (x vector) abs() vector {
	x.neg = false
	return x
}

func (x vector) negate() vector {
	x.neg = !x.neg && len(x.mant) != 0
	return x
}

// intWords returns the number of words in the integer part of x.
func (x vector) intWords() int {
	if n := len(x.mant) - x.exp; n > 0 {
		return n
	}
	return 0
}

// intPart returns the words of the integer part of x's mantissa. It ignores
// tensExp. The result shares x's words.
func (x vector) intPart() nat {
	if x.exp >= len(x.mant) {
		return nil
	}
	return x.mant[x.exp:]
}

// isInt reports whether x has no fractional words and a non-negative decimal
// exponent.
func (x vector) isInt() bool {
	return x.exp == 0 && x.tensExp >= 0
}

// setExp sets the number of fraction words of x to e, adding zero words or
// truncating low words as needed. No rounding is done.
func (x vector) setExp(e int) vector {
	if e < 0 {
		e = 0
	}
	switch {
	case e > x.exp:
		x.mant = nat(nil).shl(x.mant, uint(e-x.exp)*_W)
	case e < x.exp:
		x.mant = nat(nil).shr(x.mant, uint(x.exp-e)*_W)
	}
	x.exp = e
	return x.norm()
}

// truncate drops fraction words of x so that it keeps at most n of them.
func (x vector) truncate(n int) vector {
	if x.exp > n {
		return x.setExp(n)
	}
	return x
}

// scale2 returns x * 2**n. The operation is exact: negative shifts add
// fraction words as needed.
func (x vector) scale2(n int) vector {
	switch {
	case n > 0:
		x.mant = nat(nil).shl(x.mant, uint(n))
	case n < 0:
		n = -n
		w := (n + _W - 1) / _W
		x.mant = nat(nil).shl(x.mant, uint(w*_W-n))
		x.exp += w
	}
	return x.norm()
}

// ilog2bin returns n such that |x| < 2**n, ignoring tensExp, with
// 2**(n-1) <= |x| when x != 0.
func (x vector) ilog2bin() int {
	return x.mant.bitLen() - x.exp*_W
}

// log2Ten is log2(10).
var log2Ten = math.Log2(10)

// ilog2 returns an approximation n of log2(|x|) such that |x| < 2**n. For
// vectors with tensExp == 0, 2**(n-1) <= |x| also holds.
func (x vector) ilog2() int {
	n := x.ilog2bin()
	if x.tensExp != 0 {
		n += int(math.Ceil(float64(x.tensExp) * log2Ten))
	}
	return n
}

// float64 returns a float64 approximation of |x| in the form fr * 2**e, with
// 0.5 <= fr <= 1. It ignores tensExp and the sign. Returns 0, 0 for x == 0.
func (x vector) float64() (fr float64, e int) {
	n := x.mant.bitLen()
	if n == 0 {
		return 0, 0
	}
	var t nat
	if n > 64 {
		t = nat(nil).shr(x.mant, uint(n-64))
	} else {
		t = nat(nil).shl(x.mant, uint(64-n))
	}
	return math.Ldexp(float64(t.uint64()), -64), n - x.exp*_W
}

func (x vector) validate() {
	if !debugNumber {
		// avoid performance bugs
		panic("validate called but debugNumber is not set")
	}
	if len(x.mant) > 0 && x.mant[len(x.mant)-1] == 0 {
		panic(fmt.Sprintf("mantissa not normalized: %v", x.mant))
	}
	if x.exp < 0 {
		panic(fmt.Sprintf("negative exponent %d", x.exp))
	}
	if x.neg && len(x.mant) == 0 {
		panic("negative zero")
	}
}

// String returns a debugging representation of x.
func (x vector) String() string {
	s := "+"
	if x.neg {
		s = "-"
	}
	return fmt.Sprintf("%s%v exp=%d tens=%d prec=%d", s, []Word(x.mant), x.exp, x.tensExp, x.prec)
}
