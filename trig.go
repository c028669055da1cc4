// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// guardBits is the number of extra bits carried by the transcendental
// functions during their computations.
const guardBits = _W

func oneVec(prec int) vector {
	return vector{mant: nat(nil).setWord(1), prec: prec}
}

// trigSeries sums the power series
//
//	term - term*x²/((i+1)(i+2)) + term*x⁴/((i+1)(i+2)(i+3)(i+4)) - ...
//
// which gives sin(x) for term = x and i = 1, and cos(x) for term = 1 and i = 0.
// x must have a zero decimal exponent. The sum stops at the first term below
// 2**-prec.
func trigSeries(x, term vector, i Word, prec int) vector {
	x2 := mulVec(x, x).round(prec)
	keep := termWords(prec, x2)
	term.prec = prec
	if term.exp < keep {
		term = term.setExp(keep)
	}
	sum := term
	for term.significant() {
		term = term.truncate(keep)
		term = mulVec(term, x2)
		i++
		term = term.divWord(i)
		i++
		term = term.divWord(i)
		term = term.negate()
		sum = addVec(sum, term)
	}
	return sum
}

// reduceAngle returns x - 2πk for the integer k nearest to x/2π when |x| >= 8,
// and x otherwise.
func reduceAngle(x vector, prec int) vector {
	if x.ilog2() <= 3 {
		return x
	}
	p := prec + x.ilog2() + guardBits
	twoPi := piVec(p).scale2(1)
	q, _, _ := divVec(x, twoPi, p)
	k := q.roundWords(q.exp)
	return subVec(x, mulVec(k, twoPi)).round(prec)
}

func sinVec(x vector, prec int) vector {
	w := prec + guardBits
	x = reduceAngle(x.fold(w), w).changePrecision(w)
	return trigSeries(x, x, 1, w).round(prec)
}

func cosVec(x vector, prec int) vector {
	w := prec + guardBits
	x = reduceAngle(x.fold(w), w).changePrecision(w)
	return trigSeries(x, oneVec(w), 0, w).round(prec)
}

func tanVec(x vector, prec int) (vector, error) {
	w := prec + guardBits
	s := sinVec(x, w)
	c := cosVec(x, w)
	q, _, err := divVec(s, c, w)
	if err != nil {
		return q, err
	}
	return q.round(prec), nil
}

// asinVec computes arcsin(y) by Newton's method on sin(x) - y, starting from
// the float64 estimate.
func asinVec(y vector, prec int) (vector, error) {
	w := prec + guardBits
	y = y.fold(w).changePrecision(w)
	switch cmpAbs(y, oneVec(w)) {
	case 1:
		return vector{}, ErrInvalidArg.New("arcsine of a value outside [-1, 1]")
	case 0:
		h := piVec(w).scale2(-1)
		if y.neg {
			h = h.negate()
		}
		return h.round(prec), nil
	}

	fr, e := y.float64()
	f := math.Ldexp(fr, e)
	if y.neg {
		f = -f
	}
	x := newVectorFloat64(math.Asin(f))
	x.prec = w

	var prev vector
	for i := 0; ; i++ {
		s := sinVec(x, w)
		c := cosVec(x, w)
		q, _, err := divVec(subVec(y, s), c, w)
		if err != nil {
			return vector{}, err
		}
		q = q.round(w)
		x = addVec(x, q).round(w)
		if !q.significant() || i > 0 && cmpAbs(q, prev) >= 0 {
			break
		}
		prev = q
	}
	return x.round(prec), nil
}

// acosVec computes arccos(y) = π/2 - arcsin(y).
func acosVec(y vector, prec int) (vector, error) {
	w := prec + guardBits
	a, err := asinVec(y, w)
	if err != nil {
		return a, err
	}
	return subVec(piVec(w).scale2(-1), a).round(prec), nil
}

// atanVec computes arctan(y) = arcsin(y/sqrt(1+y²)), using
// arctan(y) = ±π/2 - arctan(1/y) for |y| > 1.
func atanVec(y vector, prec int) vector {
	w := prec + guardBits
	y = y.fold(w).changePrecision(w)
	one := oneVec(w)
	if len(y.mant) == 0 {
		return vector{prec: prec}
	}
	if cmpAbs(y, one) > 0 {
		inv, _, _ := divVec(one, y, w)
		h := piVec(w).scale2(-1)
		if y.neg {
			h = h.negate()
		}
		return subVec(h, atanVec(inv, w)).round(prec)
	}
	s, _ := sqrtVec(addVec(one, mulVec(y, y)), w)
	t, _, _ := divVec(y, s, w)
	a, _ := asinVec(t, w)
	return a.round(prec)
}
