// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// powIntVec computes x**y for an integer exponent by binary exponentiation.
// If exact is set, x must be an integer and y non-negative, and no rounding
// takes place. Otherwise intermediate results are rounded to prec bits plus
// guard bits, and negative exponents yield 1/x**|y|.
func powIntVec(x, y vector, exact bool, prec int) (vector, error) {
	e, err := intMant(y)
	if err != nil {
		return vector{}, err
	}
	w := prec + guardBits + e.bitLen()
	if !exact {
		x = x.fold(w)
	}

	z := oneVec(x.prec)
	for i := e.bitLen() - 1; i >= 0; i-- {
		z = mulVec(z, z)
		if !exact {
			z = z.round(w)
		}
		if e.bit(uint(i)) != 0 {
			z = mulVec(z, x)
			if !exact {
				z = z.round(w)
			}
		}
	}
	if exact {
		return z, nil
	}

	if y.neg {
		q, _, err := divVec(oneVec(w), z, w)
		if err != nil {
			return q, err
		}
		z = q
	}
	return z.round(prec), nil
}

// powVec computes x**y = e**(y*ln(x)) for x >= 0.
func powVec(x, y vector, prec int) (vector, error) {
	switch x.sign() {
	case -1:
		return vector{}, ErrInvalidArg.New("non-integer power of a negative number")
	case 0:
		if y.sign() <= 0 {
			return vector{}, ErrInvalidArg.New("non-positive power of zero")
		}
		return vector{prec: prec}, nil
	}
	w := prec + guardBits
	l, err := lnVec(x, w)
	if err != nil {
		return l, err
	}
	t := mulVec(y.fold(w), l).round(w)
	// e**t amplifies the absolute error of t by |t|
	if n := t.ilog2(); n > 0 {
		w += n
		if l, err = lnVec(x, w); err != nil {
			return l, err
		}
		t = mulVec(y.fold(w), l).round(w)
	}
	return expVec(t, prec), nil
}

// factorialVec computes n! for n >= 0.
func factorialVec(n Word) vector {
	m := nat(nil).setWord(1)
	for i := Word(2); i <= n && i != 0; i++ {
		m = m.mulAddWW(m, i, 0)
	}
	return vector{mant: m}
}
