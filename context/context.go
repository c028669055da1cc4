// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides calculation contexts for bignum Numbers.
//
// A Context holds a precision and a base for text conversions, so that
// sequences of operations need not pass them around:
//
//    func (c *Context) UnaryOp(x *bignum.Number) *bignum.Number
//    func (c *Context) BinaryOp(x, y *bignum.Number) *bignum.Number
//
// return the result of x.Op(args, c.Prec()).
//
// A Context also catches errors: if an operation fails, it returns nil and
// the error is recorded. Further operations with the context will be no-ops
// returning nil, without looking at their arguments, until (*Context).Err is
// called to check for errors. Results of a failed sequence of operations can
// therefore be discarded after a single error check:
//
//    x := c.Quo(c.Add(a, b), c.Sqrt(d))
//    if err := c.Err(); err != nil {
//        // x is nil
//    }
package context

import (
	"github.com/db47h/bignum"
)

const (
	// DefaultPrec is the precision in bits used by New when given a
	// non-positive precision.
	DefaultPrec = 64
	// DefaultBase is the conversion base used by New when given a zero base.
	DefaultBase = 10
)

// A Context is a wrapper around Numbers that facilitates management of
// precision, conversion base and error handling.
type Context struct {
	prec int
	base int
	err  error
}

// New creates a new context with the given precision in bits and conversion
// base. See SetPrec and SetBase for the handling of zero values.
func New(prec, base int) *Context {
	return new(Context).SetPrec(prec).SetBase(base)
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() int {
	return c.prec
}

// Base returns the conversion base of c.
func (c *Context) Base() int {
	return c.base
}

// SetPrec sets c's precision to prec and returns c. If prec <= 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec int) *Context {
	if prec <= 0 {
		prec = DefaultPrec
	}
	c.prec = prec
	return c
}

// SetBase sets c's conversion base and returns c. If base == 0, it is set to
// DefaultBase. Bases outside of [2, bignum.MaxBase] leave the base unchanged
// and put c in an error state.
func (c *Context) SetBase(base int) *Context {
	if base == 0 {
		base = DefaultBase
	}
	if base < 2 || base > bignum.MaxBase {
		if c.err == nil {
			c.err = bignum.Error.Wrap(bignum.ErrInvalidArg.New("invalid base %d", base))
		}
		if c.base == 0 {
			c.base = DefaultBase
		}
		return c
	}
	c.base = base
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// do runs f unless c is in an error state, and records its error.
func (c *Context) do(f func() (*bignum.Number, error)) *bignum.Number {
	if c.err != nil {
		return nil
	}
	z, err := f()
	if err != nil {
		c.err = err
		return nil
	}
	return z
}

// value is like do for operations that cannot fail.
func (c *Context) value(f func() *bignum.Number) *bignum.Number {
	if c.err != nil {
		return nil
	}
	return f()
}

// Parse returns the Number represented by s in c's base, with c's precision.
func (c *Context) Parse(s string) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return bignum.Parse(s, c.base, c.prec) })
}

// Text returns x formatted in c's base. It returns an empty string if c is in
// an error state.
func (c *Context) Text(x *bignum.Number) string {
	if c.err != nil {
		return ""
	}
	s, err := x.Text(c.base)
	if err != nil {
		c.err = err
		return ""
	}
	return s
}

// NewInt returns a new integer Number set to x.
func (c *Context) NewInt(x int64) *bignum.Number {
	return c.value(func() *bignum.Number { return bignum.NewInt(x).SetPrecision(c.prec) })
}

// NewFloat returns a new float Number set to x, with at least c's precision.
func (c *Context) NewFloat(x float64) *bignum.Number {
	return c.value(func() *bignum.Number { return bignum.NewFloat(x).BecomeFloat(c.prec) })
}

// Pi returns π with c's precision.
func (c *Context) Pi() *bignum.Number {
	return c.value(func() *bignum.Number { return bignum.Pi(c.prec) })
}

// Add returns x + y.
func (c *Context) Add(x, y *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Add(y, c.prec) })
}

// Sub returns x - y.
func (c *Context) Sub(x, y *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Subtract(y, c.prec) })
}

// Mul returns x × y.
func (c *Context) Mul(x, y *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Multiply(y, c.prec) })
}

// FMA returns x × y + u, computed with only one rounding.
func (c *Context) FMA(x, y, u *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.MultiplyAdd(y, u, c.prec) })
}

// Quo returns the quotient x/y.
func (c *Context) Quo(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Divide(y, c.prec) })
}

// Div returns the floored quotient of the integers x and y.
func (c *Context) Div(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Div(y) })
}

// Mod returns x modulo y.
func (c *Context) Mod(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Mod(y) })
}

// Gcd returns the greatest common divisor of the integers x and y.
func (c *Context) Gcd(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Gcd(y) })
}

// Pow returns x**y.
func (c *Context) Pow(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Power(y, c.prec) })
}

// Neg returns -x.
func (c *Context) Neg(x *bignum.Number) *bignum.Number {
	return c.value(x.Negate)
}

// Abs returns |x|.
func (c *Context) Abs(x *bignum.Number) *bignum.Number {
	return c.value(x.Abs)
}

// Floor returns the largest integer <= x.
func (c *Context) Floor(x *bignum.Number) *bignum.Number {
	return c.value(x.Floor)
}

// Ceil returns the smallest integer >= x.
func (c *Context) Ceil(x *bignum.Number) *bignum.Number {
	return c.value(x.Ceil)
}

// Shl returns x shifted left by y bits.
func (c *Context) Shl(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.ShiftLeftN(y) })
}

// Shr returns x shifted right by y bits.
func (c *Context) Shr(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.ShiftRightN(y) })
}

// And returns the bitwise and of the magnitudes of x and y.
func (c *Context) And(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.BitAnd(y) })
}

// Or returns the bitwise or of the magnitudes of x and y.
func (c *Context) Or(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.BitOr(y) })
}

// Xor returns the bitwise exclusive or of the magnitudes of x and y.
func (c *Context) Xor(x, y *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.BitXor(y) })
}

// Not returns the complement of the words of the magnitude of x.
func (c *Context) Not(x *bignum.Number) *bignum.Number {
	return c.do(x.BitNot)
}

// Sqrt returns the square root of x.
func (c *Context) Sqrt(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Sqrt(c.prec) })
}

// Sin returns the sine of x.
func (c *Context) Sin(x *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Sin(c.prec) })
}

// Cos returns the cosine of x.
func (c *Context) Cos(x *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Cos(c.prec) })
}

// Tan returns the tangent of x.
func (c *Context) Tan(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Tan(c.prec) })
}

// Asin returns the arcsine of x.
func (c *Context) Asin(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.ArcSin(c.prec) })
}

// Acos returns the arccosine of x.
func (c *Context) Acos(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.ArcCos(c.prec) })
}

// Atan returns the arctangent of x.
func (c *Context) Atan(x *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.ArcTan(c.prec) })
}

// Exp returns e**x.
func (c *Context) Exp(x *bignum.Number) *bignum.Number {
	return c.value(func() *bignum.Number { return x.Exp(c.prec) })
}

// Log returns the natural logarithm of x.
func (c *Context) Log(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return x.Ln(c.prec) })
}

// Factorial returns x!.
func (c *Context) Factorial(x *bignum.Number) *bignum.Number {
	return c.do(func() (*bignum.Number, error) { return bignum.Factorial(x) })
}
