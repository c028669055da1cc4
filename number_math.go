// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Sqrt returns the square root of x. It fails with ErrInvalidArg if x < 0.
func (x *Number) Sqrt(prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x)
	v, err := sqrtVec(x.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// Sin returns the sine of x, in radians.
func (x *Number) Sin(prec int) *Number {
	p := promote(prec, x)
	return result(sinVec(x.v, p), false, p)
}

// Cos returns the cosine of x, in radians.
func (x *Number) Cos(prec int) *Number {
	p := promote(prec, x)
	return result(cosVec(x.v, p), false, p)
}

// Tan returns the tangent of x, in radians.
func (x *Number) Tan(prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x)
	v, err := tanVec(x.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// ArcSin returns the arcsine of x. It fails with ErrInvalidArg if |x| > 1.
func (x *Number) ArcSin(prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x)
	v, err := asinVec(x.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// ArcCos returns the arccosine of x. It fails with ErrInvalidArg if |x| > 1.
func (x *Number) ArcCos(prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x)
	v, err := acosVec(x.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// ArcTan returns the arctangent of x.
func (x *Number) ArcTan(prec int) *Number {
	p := promote(prec, x)
	return result(atanVec(x.v, p), false, p)
}

// Exp returns e**x.
func (x *Number) Exp(prec int) *Number {
	p := promote(prec, x)
	return result(expVec(x.v, p), false, p)
}

// Ln returns the natural logarithm of x. It fails with ErrInvalidArg if
// x <= 0.
func (x *Number) Ln(prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x)
	v, err := lnVec(x.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// Pi returns π to prec bits.
func Pi(prec int) *Number {
	return result(piVec(prec), false, prec)
}

// Factorial returns n! for an integer n >= 0. It fails with ErrNotInteger
// if n has a fractional part and with ErrInvalidArg if n is negative or too
// large.
func Factorial(n *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(n); err != nil {
		return nil, err
	}
	m, err := intMant(n.v)
	if err != nil {
		return nil, err
	}
	if n.v.neg {
		return nil, ErrInvalidArg.New("factorial of a negative number")
	}
	if len(m) > 1 {
		return nil, ErrInvalidArg.New("factorial argument too large")
	}
	var k Word
	if len(m) == 1 {
		k = m[0]
	}
	return result(factorialVec(k), true, n.v.prec), nil
}
