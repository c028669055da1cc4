// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Arithmetic on digit vectors. All functions return fresh vectors and leave
// their arguments untouched.

package bignum

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// alignExp returns the mantissas of x and y extended to the same number of
// fraction words, and that number.
func alignExp(x, y vector) (a, b nat, exp int) {
	exp = maxInt(x.exp, y.exp)
	a, b = x.mant, y.mant
	if x.exp < exp {
		a = nat(nil).shl(a, uint(exp-x.exp)*_W)
	}
	if y.exp < exp {
		b = nat(nil).shl(b, uint(exp-y.exp)*_W)
	}
	return a, b, exp
}

// alignTens returns x and y rescaled to the same, smallest, decimal exponent.
// The operand with the larger decimal exponent has its mantissa multiplied by
// the corresponding power of ten, which is exact.
func alignTens(x, y vector) (vector, vector) {
	switch {
	case x.tensExp > y.tensExp:
		x.mant = nat(nil).mul(x.mant, pow10(x.tensExp-y.tensExp))
		x.tensExp = y.tensExp
	case x.tensExp < y.tensExp:
		y.mant = nat(nil).mul(y.mant, pow10(y.tensExp-x.tensExp))
		y.tensExp = x.tensExp
	}
	return x, y
}

// addVec returns x + y. Decimal exponents are aligned first.
func addVec(x, y vector) vector {
	if x.tensExp != y.tensExp {
		x, y = alignTens(x, y)
	}
	a, b, exp := alignExp(x, y)
	z := vector{exp: exp, tensExp: x.tensExp, prec: maxInt(x.prec, y.prec)}
	if x.neg == y.neg {
		z.mant = nat(nil).add(a, b)
		z.neg = x.neg
	} else {
		switch a.cmp(b) {
		case 1:
			z.mant = nat(nil).sub(a, b)
			z.neg = x.neg
		case -1:
			z.mant = nat(nil).sub(b, a)
			z.neg = y.neg
		}
	}
	z = z.norm()
	if debugNumber {
		z.validate()
	}
	return z
}

// subVec returns x - y.
func subVec(x, y vector) vector {
	return addVec(x, y.negate())
}

// mulVec returns x * y. Fraction words and decimal exponents add up, the
// result is exact.
func mulVec(x, y vector) vector {
	z := vector{
		mant:    nat(nil).mul(x.mant, y.mant),
		exp:     x.exp + y.exp,
		tensExp: x.tensExp + y.tensExp,
		prec:    maxInt(x.prec, y.prec),
		neg:     x.neg != y.neg,
	}
	return z.norm()
}

// mulWord returns x * y.
func (x vector) mulWord(y Word) vector {
	x.mant = nat(nil).mulAddWW(x.mant, y, 0)
	return x.norm()
}

// divWord returns x / y truncated to x's fraction words.
func (x vector) divWord(y Word) vector {
	x.mant, _ = nat(nil).divW(x.mant, y)
	return x.norm()
}

// intMant returns the integer mantissa of x, with any positive decimal
// exponent expanded. It fails with ErrNotInteger if x has fraction words or a
// negative decimal exponent, even if they hold zeros.
func intMant(x vector) (nat, error) {
	if !x.isInt() {
		return nil, ErrNotInteger.New("value has a fractional part")
	}
	if x.tensExp > 0 {
		return nat(nil).mul(x.mant, pow10(x.tensExp)), nil
	}
	return x.mant, nil
}

// intDivVec returns the quotient and remainder of the truncated integer
// division x / y: q is rounded toward zero and r has the sign of x.
func intDivVec(x, y vector) (q, r vector, err error) {
	a, err := intMant(x)
	if err != nil {
		return q, r, err
	}
	b, err := intMant(y)
	if err != nil {
		return q, r, err
	}
	if len(b) == 0 {
		return q, r, errDivByZero
	}
	qm, rm := nat(nil).div(nil, a, b)
	q = vector{mant: qm, neg: x.neg != y.neg}.norm()
	r = vector{mant: rm, neg: x.neg}.norm()
	return q, r, nil
}

// divVec returns the quotient of x / y carrying at least prec significant
// bits and fracWords(prec) fraction words, and the matching remainder such
// that x = q*y + r exactly. q is truncated toward zero.
func divVec(x, y vector, prec int) (q, r vector, err error) {
	if len(y.mant) == 0 {
		return q, r, errDivByZero
	}
	// shift the dividend by k words so that the integer quotient of the
	// mantissas has enough fraction words and significant words.
	k := fracWords(prec) - x.exp + y.exp
	if n := prec/_W + 2 - len(x.mant) + len(y.mant); n > k {
		k = n
	}
	if k < 0 {
		k = 0
	}
	u := nat(nil).shl(x.mant, uint(k)*_W)
	qm, rm := nat(nil).div(nil, u, y.mant)
	q = vector{
		mant:    qm,
		exp:     k + x.exp - y.exp,
		tensExp: x.tensExp - y.tensExp,
		prec:    prec,
		neg:     x.neg != y.neg,
	}.norm()
	r = vector{
		mant:    rm,
		exp:     k + x.exp,
		tensExp: x.tensExp,
		prec:    prec,
		neg:     x.neg,
	}.norm()
	return q, r, nil
}

// modVec returns x mod y, with the sign of y: a non-zero remainder whose sign
// differs from y's gets y added to it.
func modVec(x, y vector) (vector, error) {
	_, r, err := intDivVec(x, y)
	if err != nil {
		return r, err
	}
	if len(r.mant) != 0 && r.neg != y.neg {
		yy, _ := intMant(y)
		r = addVec(r, vector{mant: yy, neg: y.neg})
	}
	return r, nil
}

// gcdVec returns the non-negative greatest common divisor of the integers x
// and y.
func gcdVec(x, y vector) (vector, error) {
	a, err := intMant(x)
	if err != nil {
		return vector{}, err
	}
	b, err := intMant(y)
	if err != nil {
		return vector{}, err
	}
	for len(b) != 0 {
		_, r := nat(nil).div(nil, a, b)
		a, b = b, r
	}
	return vector{mant: nat(nil).set(a)}, nil
}

// shlVec returns the integer x shifted left by n bits. The sign is kept.
func shlVec(x vector, n int) (vector, error) {
	if n < 0 {
		return vector{}, ErrInvalidArg.New("negative shift amount %d", n)
	}
	a, err := intMant(x)
	if err != nil {
		return vector{}, err
	}
	return vector{mant: nat(nil).shl(a, uint(n)), neg: x.neg}.norm(), nil
}

// shrVec returns the integer x shifted right by n bits. The magnitude is
// shifted and the sign kept, so the result is truncated toward zero.
func shrVec(x vector, n int) (vector, error) {
	if n < 0 {
		return vector{}, ErrInvalidArg.New("negative shift amount %d", n)
	}
	a, err := intMant(x)
	if err != nil {
		return vector{}, err
	}
	return vector{mant: nat(nil).shr(a, uint(n)), neg: x.neg}.norm(), nil
}

// bitwise operations work on the magnitudes of integers; results are
// non-negative.
func bitwiseVec(x, y vector, op func(z, x, y nat) nat) (vector, error) {
	a, err := intMant(x)
	if err != nil {
		return vector{}, err
	}
	b, err := intMant(y)
	if err != nil {
		return vector{}, err
	}
	return vector{mant: op(nil, a, b)}, nil
}

func andVec(x, y vector) (vector, error) { return bitwiseVec(x, y, nat.and) }
func orVec(x, y vector) (vector, error)  { return bitwiseVec(x, y, nat.or) }
func xorVec(x, y vector) (vector, error) { return bitwiseVec(x, y, nat.xor) }

// notVec complements the words of the magnitude of the integer x.
func notVec(x vector) (vector, error) {
	a, err := intMant(x)
	if err != nil {
		return vector{}, err
	}
	return vector{mant: nat(nil).not(a)}, nil
}

// cmpVec compares x and y exactly and returns -1, 0 or 1.
func cmpVec(x, y vector) int {
	xs, ys := x.sign(), y.sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	r := cmpAbs(x, y)
	if xs < 0 {
		r = -r
	}
	return r
}

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y vector) int {
	if x.tensExp != y.tensExp {
		x, y = alignTens(x, y)
	}
	a, b, _ := alignExp(x, y)
	return a.cmp(b)
}
