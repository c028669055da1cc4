// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

// sqrtVec computes the square root of x >= 0 with Newton's iteration
//
//	z' = (z + x/z) / 2
//
// seeded with the float64 square root of x's leading bits.
func sqrtVec(x vector, prec int) (vector, error) {
	switch x.sign() {
	case -1:
		return vector{}, ErrInvalidArg.New("square root of a negative number")
	case 0:
		return vector{prec: prec}, nil
	}

	w := prec + guardBits
	x = x.fold(w).changePrecision(w)

	fr, e := x.float64()
	if e&1 != 0 {
		fr *= 2
		e--
	}
	z := newVectorFloat64(math.Sqrt(fr)).scale2(e / 2)
	z.prec = w

	var prev vector
	for i := 0; ; i++ {
		q, _, _ := divVec(x, z, w)
		nz := addVec(z, q).scale2(-1).round(w)
		d := subVec(nz, z)
		z = nz
		if negligible(d, z, w) || i > 0 && cmpAbs(d, prev) >= 0 {
			break
		}
		prev = d
	}
	return z.round(prec), nil
}

// negligible reports whether |d| < 2**-prec * |ref|.
func negligible(d, ref vector, prec int) bool {
	return len(d.mant) == 0 || d.ilog2() <= ref.ilog2()-prec
}
