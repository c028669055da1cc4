// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math"
)

// A Number is an arbitrary precision integer or floating-point number.
//
// Numbers are immutable: operations return new Numbers and never modify their
// operands, so that Numbers can be freely shared.
//
// Every Number carries a precision in bits. Operations on floats compute
// their result to max(operand precisions, requested precision) bits; integer
// results are always exact. The integer tag of a result is set only if all
// operands were integers and the operation preserves integrality: Add,
// Subtract, Multiply, Negate, Abs, shifts, bit operations, Div, Mod, Gcd,
// Floor, Ceil and Power with a non-negative exponent do, Divide and the
// transcendental functions never do.
type Number struct {
	v     vector
	isInt bool
}

// NewInt returns a new integer Number set to x.
func NewInt(x int64) *Number {
	return &Number{v: newVector(x), isInt: true}
}

// NewFloat returns a new float Number set to the exact value of x, with 53
// bits of precision. NewFloat panics if x is a NaN or an infinity.
func NewFloat(x float64) *Number {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("NewFloat(%v)", x))
	}
	v := newVectorFloat64(x)
	v.prec = 53
	return &Number{v: v}
}

// Parse parses s as a number in the given base with the requested
// precision in bits. Literals with a radix point or an exponent are floats,
// others are integers. See the package documentation for the syntax.
func Parse(s string, base, prec int) (z *Number, err error) {
	defer Error.WrapP(&err)

	v, isFloat, err := parseVector(s, base, prec)
	if err != nil {
		return nil, err
	}
	if isFloat {
		v = v.round(v.prec)
	}
	return &Number{v: v, isInt: !isFloat}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string, base, prec int) *Number {
	z, err := Parse(s, base, prec)
	if err != nil {
		panic(err)
	}
	return z
}

// Text returns the string representation of x in the given base. Integers are
// converted exactly. Floats are printed with as many significant digits as
// their precision allows, see the package documentation for the format.
func (x *Number) Text(base int) (string, error) {
	if base < 2 || base > MaxBase {
		return "", Error.Wrap(ErrInvalidArg.New("invalid base %d", base))
	}
	if x.isInt {
		return formatInt(x.v, base), nil
	}
	return formatFloat(x.v, base), nil
}

// String returns x in base 10.
func (x *Number) String() string {
	s, _ := x.Text(10)
	return s
}

// Prec returns the precision of x in bits.
func (x *Number) Prec() int {
	return x.v.prec
}

// IsInt reports whether x is tagged as an integer.
func (x *Number) IsInt() bool {
	return x.isInt
}

// IsIntValue reports whether x is an integer or a float with an integral
// value.
func (x *Number) IsIntValue() bool {
	if x.isInt {
		return true
	}
	_, frac := x.v.trunc()
	return !frac
}

// IsSmall reports whether x can be converted to a float64 without overflow
// and with no more loss than its own precision: integers of at most 53 bits,
// and floats of at most 53 bits of precision within the float64 exponent
// range.
func (x *Number) IsSmall() bool {
	if x.isInt {
		return x.v.mant.bitLen() <= 53
	}
	if x.v.prec > 53 {
		return false
	}
	e := x.v.ilog2()
	return -1021 < e && e < 1021
}

// BitCount returns the number of bits of the magnitude of an integer x. For a
// float it returns the binary exponent e of x such that 2**(e-1) <= |x| < 2**e.
// BitCount returns 0 for x == 0.
func (x *Number) BitCount() int {
	if x.isInt {
		return x.v.mant.bitLen()
	}
	if len(x.v.mant) == 0 {
		return 0
	}
	return x.v.fold(x.v.prec + _W).ilog2bin()
}

// Double returns the float64 value nearest to x. The result is only
// meaningful if x.IsSmall() holds.
func (x *Number) Double() float64 {
	v := x.v
	if v.tensExp != 0 {
		v = v.fold(maxInt(v.prec, 64) + _W)
	}
	fr, e := v.float64()
	f := math.Ldexp(fr, e)
	if v.neg {
		f = -f
	}
	return f
}

// Int64 returns the value of the integer x and true if x fits in an int64.
func (x *Number) Int64() (int64, bool) {
	if !x.isInt {
		return 0, false
	}
	m, err := intMant(x.v)
	if err != nil || m.bitLen() > 64 {
		return 0, false
	}
	u := m.uint64()
	if u > 1<<63 || u == 1<<63 && !x.v.neg {
		return 0, false
	}
	if x.v.neg {
		return -int64(u), true
	}
	return int64(u), true
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x *Number) Sign() int {
	return x.v.sign()
}

// Cmp compares x and y exactly and returns -1, 0 or 1.
func (x *Number) Cmp(y *Number) int {
	return cmpVec(x.v, y.v)
}

// LessThan reports whether x < y.
func (x *Number) LessThan(y *Number) bool {
	return cmpVec(x.v, y.v) < 0
}

// GreaterThan reports whether x > y.
func (x *Number) GreaterThan(y *Number) bool {
	return cmpVec(x.v, y.v) > 0
}

// Equals reports whether x and y are equal. Integers compare exactly. When
// any of x or y is a float, they are also equal if their difference is
// negligible at the larger of their precisions, relative to their magnitude.
func (x *Number) Equals(y *Number) bool {
	a, b := x.v.dropTrailZeroes(), y.v.dropTrailZeroes()
	if cmpVec(a, b) == 0 {
		return true
	}
	if x.isInt && y.isInt {
		return false
	}
	d := subVec(a, b)
	d.prec = maxInt(x.v.prec, y.v.prec) - maxInt(a.ilog2(), b.ilog2())
	return !d.significant()
}

// promote returns the precision of a result: the largest of the operands'
// precisions and prec.
func promote(prec int, xs ...*Number) int {
	for _, x := range xs {
		prec = maxInt(prec, x.v.prec)
	}
	return prec
}

// result wraps v into a Number, rounding floats to prec.
func result(v vector, isInt bool, prec int) *Number {
	v.prec = prec
	if !isInt {
		v = v.round(prec)
	}
	if debugNumber {
		v.validate()
		if isInt && !v.isInt() {
			panic("integer result with fractional part")
		}
	}
	return &Number{v: v, isInt: isInt}
}

// Add returns x + y.
func (x *Number) Add(y *Number, prec int) *Number {
	return result(addVec(x.v, y.v), x.isInt && y.isInt, promote(prec, x, y))
}

// Subtract returns x - y.
func (x *Number) Subtract(y *Number, prec int) *Number {
	return result(subVec(x.v, y.v), x.isInt && y.isInt, promote(prec, x, y))
}

// Multiply returns x * y.
func (x *Number) Multiply(y *Number, prec int) *Number {
	return result(mulVec(x.v, y.v), x.isInt && y.isInt, promote(prec, x, y))
}

// MultiplyAdd returns x*y + z, rounded once.
func (x *Number) MultiplyAdd(y, z *Number, prec int) *Number {
	p := promote(prec, x, y, z)
	return result(addVec(mulVec(x.v, y.v), z.v), x.isInt && y.isInt && z.isInt, p)
}

// Divide returns x / y as a float, even for integer operands. It fails with
// ErrInvalidArg if y is zero.
func (x *Number) Divide(y *Number, prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x, y)
	q, _, err := divVec(x.v, y.v, p)
	if err != nil {
		return nil, err
	}
	return result(q, false, p), nil
}

// checkInts fails with ErrNotInteger unless all of xs are tagged as integers.
// Floats are rejected even when their value is integral.
func checkInts(xs ...*Number) error {
	for _, x := range xs {
		if !x.isInt {
			return ErrNotInteger.New("%s is not an integer", x)
		}
	}
	return nil
}

// Div returns the floored quotient of the integers x and y, such that
// x = y*x.Div(y) + x.Mod(y). It fails with ErrNotInteger if x or y has a
// fractional part and with ErrInvalidArg if y is zero.
func (x *Number) Div(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	q, r, err := intDivVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	if len(r.mant) != 0 && r.neg != y.v.neg {
		q = subVec(q, oneVec(0))
	}
	return result(q, true, promote(0, x, y)), nil
}

// Mod returns x modulo y. The result is zero or has the sign of y. Mod fails
// with ErrNotInteger if x or y has a fractional part and with ErrInvalidArg
// if y is zero.
func (x *Number) Mod(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	r, err := modVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	return result(r, true, promote(0, x, y)), nil
}

// Gcd returns the greatest common divisor of the integers x and y. The result
// is non-negative; Gcd(0, 0) is 0.
func (x *Number) Gcd(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	g, err := gcdVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	return result(g, true, promote(0, x, y)), nil
}

// Power returns x**y. Integral exponents use binary exponentiation and the
// result is an integer if x and y are integers and y is non-negative. Other
// exponents are computed as e**(y*ln(x)), which fails with ErrInvalidArg for
// negative x.
func (x *Number) Power(y *Number, prec int) (z *Number, err error) {
	defer Error.WrapP(&err)
	p := promote(prec, x, y)
	if e := y.v.dropTrailZeroes(); e.isInt() {
		exact := x.isInt && y.isInt && !e.neg
		v, err := powIntVec(x.v, e, exact, p)
		if err != nil {
			return nil, err
		}
		return result(v, exact, p), nil
	}
	v, err := powVec(x.v, y.v, p)
	if err != nil {
		return nil, err
	}
	return result(v, false, p), nil
}

// PowerInt is like Power but fails with ErrNotInteger if y is not tagged as an
// integer.
func (x *Number) PowerInt(y *Number, prec int) (*Number, error) {
	if !y.isInt {
		return nil, Error.Wrap(ErrNotInteger.New("non-integer exponent"))
	}
	return x.Power(y, prec)
}

// Negate returns -x.
func (x *Number) Negate() *Number {
	return &Number{v: x.v.negate(), isInt: x.isInt}
}

// Abs returns |x|.
func (x *Number) Abs() *Number {
	return &Number{v: x.v.abs(), isInt: x.isInt}
}

// ShiftLeft returns x * 2**n. Integers are shifted directly, floats are
// scaled exactly. It fails with ErrInvalidArg if n is negative.
func (x *Number) ShiftLeft(n int) (z *Number, err error) {
	defer Error.WrapP(&err)
	if !x.isInt {
		if n < 0 {
			return nil, ErrInvalidArg.New("negative shift amount %d", n)
		}
		return result(x.v.scale2(n), false, x.v.prec), nil
	}
	v, err := shlVec(x.v, n)
	if err != nil {
		return nil, err
	}
	return result(v, true, x.v.prec), nil
}

// ShiftRight returns x / 2**n. Integers are shifted directly, truncating their
// magnitude; floats are scaled exactly. It fails with ErrInvalidArg if n is
// negative.
func (x *Number) ShiftRight(n int) (z *Number, err error) {
	defer Error.WrapP(&err)
	if !x.isInt {
		if n < 0 {
			return nil, ErrInvalidArg.New("negative shift amount %d", n)
		}
		v := x.v.scale2(-n)
		v.prec = x.v.prec
		return &Number{v: v}, nil
	}
	v, err := shrVec(x.v, n)
	if err != nil {
		return nil, err
	}
	return result(v, true, x.v.prec), nil
}

// shiftAmount converts y to a shift amount.
func shiftAmount(y *Number) (int, error) {
	n, ok := y.Int64()
	if !ok || n < 0 || n > math.MaxInt32 {
		return 0, Error.Wrap(ErrInvalidArg.New("invalid shift amount %s", y))
	}
	return int(n), nil
}

// ShiftLeftN is like ShiftLeft with the shift amount given as a Number. It
// fails with ErrInvalidArg unless y is a small non-negative integer.
func (x *Number) ShiftLeftN(y *Number) (*Number, error) {
	n, err := shiftAmount(y)
	if err != nil {
		return nil, err
	}
	return x.ShiftLeft(n)
}

// ShiftRightN is like ShiftRight with the shift amount given as a Number. It
// fails with ErrInvalidArg unless y is a small non-negative integer.
func (x *Number) ShiftRightN(y *Number) (*Number, error) {
	n, err := shiftAmount(y)
	if err != nil {
		return nil, err
	}
	return x.ShiftRight(n)
}

// BitAnd, BitOr, BitXor and BitNot operate on the words storing the
// magnitudes of integers. They are not two's complement operations: signs are
// ignored and results are non-negative. BitNot complements every word of the
// magnitude of x, so that the result depends on its storage size.

// BitAnd returns |x| & |y|.
func (x *Number) BitAnd(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	v, err := andVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	return result(v, true, promote(0, x, y)), nil
}

// BitOr returns |x| | |y|.
func (x *Number) BitOr(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	v, err := orVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	return result(v, true, promote(0, x, y)), nil
}

// BitXor returns |x| ^ |y|.
func (x *Number) BitXor(y *Number) (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x, y); err != nil {
		return nil, err
	}
	v, err := xorVec(x.v, y.v)
	if err != nil {
		return nil, err
	}
	return result(v, true, promote(0, x, y)), nil
}

// BitNot returns the complement of the words of |x|.
func (x *Number) BitNot() (z *Number, err error) {
	defer Error.WrapP(&err)
	if err := checkInts(x); err != nil {
		return nil, err
	}
	v, err := notVec(x.v)
	if err != nil {
		return nil, err
	}
	return result(v, true, x.v.prec), nil
}

// trunc returns the integer part of |x| and whether a non-zero fractional part
// was discarded.
func (x vector) trunc() (nat, bool) {
	switch {
	case x.tensExp > 0:
		x.mant = nat(nil).mul(x.mant, pow10(x.tensExp))
		x.tensExp = 0
	case x.tensExp < 0:
		if x.exp == 0 {
			q, r := nat(nil).div(nil, x.mant, pow10(-x.tensExp))
			return q, len(r) != 0
		}
		x = x.fold(maxInt(x.prec, x.mant.bitLen()) + _W)
	}
	return nat(nil).set(x.intPart()), x.mant.sticky(x.exp) != 0
}

// Floor returns the largest integer <= x.
func (x *Number) Floor() *Number {
	if x.isInt {
		return x
	}
	m, frac := x.v.trunc()
	if frac && x.v.neg {
		m = m.add(m, natOne)
	}
	return result(vector{mant: m, neg: x.v.neg}.norm(), true, x.v.prec)
}

// Ceil returns the smallest integer >= x.
func (x *Number) Ceil() *Number {
	if x.isInt {
		return x
	}
	m, frac := x.v.trunc()
	if frac && !x.v.neg {
		m = m.add(m, natOne)
	}
	return result(vector{mant: m, neg: x.v.neg}.norm(), true, x.v.prec)
}

// BecomeInt returns x converted to the nearest integer, rounding halfway
// values away from zero.
func (x *Number) BecomeInt() *Number {
	if x.isInt {
		return x
	}
	v := x.v
	var m nat
	if v.tensExp < 0 && v.exp == 0 {
		d := pow10(-v.tensExp)
		q, r := nat(nil).div(nil, v.mant, d)
		if r = r.shl(r, 1); r.cmp(d) >= 0 {
			q = q.add(q, natOne)
		}
		m = q
	} else {
		v = v.fold(maxInt(v.prec, v.mant.bitLen()) + _W)
		m = v.roundWords(v.exp).mant
	}
	return result(vector{mant: m, neg: x.v.neg}.norm(), true, x.v.prec)
}

// BecomeFloat returns x as a float with at least prec bits of precision.
func (x *Number) BecomeFloat(prec int) *Number {
	p := promote(prec, x)
	return &Number{v: x.v.changePrecision(p)}
}

// SetPrecision returns x with a precision of prec bits. The fraction of a
// float is widened as needed, but never narrowed.
func (x *Number) SetPrecision(prec int) *Number {
	v := x.v
	if !x.isInt && prec > v.prec {
		v = v.changePrecision(prec)
	}
	v.prec = prec
	return &Number{v: v, isInt: x.isInt}
}
