// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// piSeed is π to 46 decimal digits. It is trusted to 40 digits.
const piSeed = "3.141592653589793238462643383279502884197169399"

// piVec returns π to prec bits.
//
// Starting from piSeed, every iteration of x' = x + sin(x) triples the number
// of correct bits. The precision schedule is chosen backward from the target
// so that the last iteration runs at the target precision.
func piVec(prec int) vector {
	target := prec + guardBits
	seedBits := digitsToBits(40, 10)
	x, _, _ := parseVector(piSeed, 10, seedBits)
	x = x.fold(target)

	if target > seedBits {
		cur := target
		for cur > seedBits*3 {
			cur = (cur + 2) / 3
		}
		for {
			x = x.changePrecision(cur)
			x = addVec(x, trigSeries(x, x, 1, cur)).round(cur)
			if cur == target {
				break
			}
			cur *= 3
			if cur > target {
				cur = target
			}
		}
	}

	return x.round(prec)
}
