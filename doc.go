// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision integer and floating-point
arithmetic, together with the elementary transcendental functions.

Values are represented by the immutable Number type. A Number is either an
integer, of unbounded size and always exact, or a float with a precision given
in bits. The mantissa of a Number is stored in a little-endian slice of 32 bits
Words; floats keep a number of fraction words in that slice and an additional
power of ten scale factor, so that decimal literals such as 1.5e-30 are held
exactly until arithmetic requires otherwise.

Numbers are created by parsing literals or from native values:

    x, err := bignum.Parse("-1.25e-3", 10, 128) // float, 128 bits
    n := bignum.NewInt(42)                       // integer
    f := bignum.NewFloat(0.1)                    // float, 53 bits

Operations take their operands and a precision and return a new Number:

    func (x *Number) Binary(y *Number, prec int) *Number          // z = x binary y
    func (x *Number) Binary(y *Number, prec int) (*Number, error) // may fail
    func (x *Number) Unary(prec int) *Number                      // z = unary x

The precision of a float result is the maximum of the precision of the
operands and of the requested precision. Operations that are exact on
integers, such as Div, Mod, Gcd, the bit operations and Floor, take no
precision argument.

Errors belong to the Error class, and to one of ErrNotInteger or
ErrInvalidArg:

    _, err := x.Mod(y)
    if bignum.ErrNotInteger.Has(err) {
        // x or y has a fractional part
    }

Literals

Parse accepts an optional sign, digits in the given base with an optional
radix point, and an optional exponent introduced by 'e' or 'E' (bases up to
10) or '@' (any base). The exponent is written in decimal and is a power of the
base: "1.1@2" in base 16 is 0x110. Letters in digits are case insensitive.
Literals with a radix point or an exponent are floats; their precision is at
least the number of bits needed for their significant digits.

Formatting

Text returns integers exactly. Floats are printed as a mantissa with at least
one fractional digit, followed by an exponent when needed, using the same
exponent markers as Parse. A float is brought to scientific notation with a
zero integer part, unless it has no exponent and its integer part is below
10000:

    1234.5   // stays as is
    12345.0  // printed as 0.12345e5

The number of printed digits is derived from the precision of the float; the
last digit is rounded and trailing zeros are removed.

Only large values are brought to scientific notation. Small values keep a zero
integer part and are printed with their leading fractional zeros, except in
base 10 where the decimal exponent of the value is printed as is:

    "1@-3" in base 16   // printed as 0.001
    1e-30 in base 16    // printed as 0.00000000000000000000000014484b...
    1e-30 in base 10    // printed as 0.1e-29

Package context wraps these operations behind a fixed precision and base with
a single error check, and command bigcalc exposes them on the command line.
*/
package bignum
