// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// expVec computes e**x by summing its Taylor series. Negative arguments are
// computed as 1/e**|x|.
func expVec(x vector, prec int) vector {
	w := prec + guardBits
	x = x.fold(w)
	if x.neg {
		e := expVec(x.abs(), w)
		q, _, _ := divVec(oneVec(w), e, w)
		return q.round(prec)
	}
	x = x.changePrecision(w)

	keep := termWords(w, x)
	sum := oneVec(w)
	term := oneVec(w).setExp(keep)
	for i := Word(1); term.significant(); i++ {
		term = term.truncate(keep)
		term = mulVec(term, x)
		term = term.divWord(i)
		sum = addVec(sum, term)
	}
	return sum.round(prec)
}
