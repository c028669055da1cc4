// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// lnLimit is the bound on |y-1| below which the series for ln(y) is summed.
var lnLimit = vector{mant: nat{1}, tensExp: -2}

// lnVec computes the natural logarithm of x > 0.
//
// The argument is brought close to 1 by k successive square roots, then
// ln(1+t) = t - t²/2 + t³/3 - ... is summed and the result scaled by 2**k.
// The computation runs at twice the requested precision since each square
// root halves the magnitude of the error term.
func lnVec(x vector, prec int) (vector, error) {
	if x.sign() <= 0 {
		return vector{}, ErrInvalidArg.New("logarithm of a non-positive number")
	}
	w := 2*prec + guardBits
	one := oneVec(w)
	y := x.fold(w).changePrecision(w)

	k := 0
	for cmpAbs(subVec(y, one), lnLimit) >= 0 {
		y, _ = sqrtVec(y, w)
		k++
	}

	t := subVec(y, one).round(w)
	keep := fracWords(w) + 1
	term := one.negate()
	sum := vector{prec: w}
	for i := Word(1); term.significant(); i++ {
		term = term.truncate(keep).negate()
		term = mulVec(term, t)
		sum = addVec(sum, term.divWord(i))
	}
	return sum.scale2(k).round(prec), nil
}
