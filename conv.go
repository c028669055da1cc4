// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// String conversions for digit vectors.

package bignum

import "strconv"

// MaxExp is the largest magnitude of the exponent of a float literal, once
// scaled to its last digit: in base b, the literal's value is an integer times
// b**e with -MaxExp <= e <= MaxExp.
const MaxExp = 1 << 24

// parseVector parses s as a number in the given base. The accepted syntax
// is
//
//	number   = [ sign ] mantissa [ exponent ] .
//	sign     = "+" | "-" .
//	mantissa = digits [ "." { digit } ] | "." digits .
//	exponent = ( "e" | "E" | "@" ) [ sign ] decimals .
//
// Digits are case insensitive letters for bases above 10, the "e" and "E"
// exponent markers are only recognized for bases up to 10. The exponent is a
// power of the base, written in decimal. Numbers with a radix point or an
// exponent are floats.
//
// Floats get a precision of at least the bits needed for their significant
// digits, counted from the first non-zero digit.
func parseVector(s string, base, prec int) (z vector, isFloat bool, err error) {
	if base < 2 || base > MaxBase {
		return z, false, ErrInvalidArg.New("invalid base %d", base)
	}

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	ds := make([]byte, 0, len(s))
	frac, sig := 0, 0
	dot := false
	for ; i < len(s); i++ {
		ch := s[i]
		if ch == '.' {
			if dot {
				return z, false, ErrInvalidArg.New("syntax error scanning %q: unexpected '.'", s)
			}
			dot = true
			continue
		}
		if ch == '@' || base <= 10 && (ch == 'e' || ch == 'E') {
			break
		}
		d := digitValue(ch)
		if d >= base {
			return z, false, ErrInvalidArg.New("syntax error scanning %q: invalid digit %q for base %d", s, ch, base)
		}
		ds = append(ds, byte(d))
		if dot {
			frac++
		}
		if d != 0 || sig > 0 {
			sig++
		}
	}
	if len(ds) == 0 {
		return z, false, ErrInvalidArg.New("syntax error scanning %q: no digits", s)
	}

	exp := 0
	hasExp := i < len(s)
	if hasExp {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return z, false, ErrInvalidArg.New("exponent out of range in %q", s)
			}
			return z, false, ErrInvalidArg.New("syntax error scanning %q: invalid exponent", s)
		}
		if e < -MaxExp || e > MaxExp {
			return z, false, ErrInvalidArg.New("exponent out of range in %q", s)
		}
		exp = e
	}

	isFloat = dot || hasExp
	if isFloat {
		prec = maxInt(prec, digitsToBits(sig, base))
	}
	z = vector{mant: nat(nil).setDigits(ds, base), neg: neg, prec: prec}
	if len(z.mant) == 0 {
		return z.norm(), isFloat, nil
	}

	e := exp - frac
	if e < -MaxExp || e > MaxExp {
		return z, false, ErrInvalidArg.New("exponent out of range in %q", s)
	}
	switch {
	case base == 10:
		z.tensExp = e
	case e > 0:
		z.mant = nat(nil).mul(z.mant, nat(nil).expWW(Word(base), Word(e)))
	case e < 0:
		d := vector{mant: nat(nil).expWW(Word(base), Word(-e))}
		z, _, _ = divVec(z, d, prec)
		z = z.round(prec)
	}
	return z.norm(), isFloat, nil
}

// formatInt returns the digits of the integer x in the given base.
func formatInt(x vector, base int) string {
	m, err := intMant(x)
	if err != nil {
		panic(err)
	}
	return string(m.itoa(x.neg, base))
}

// formatFloat returns x as a float in the given base. The output has the form
// mantissa[e|@exponent], where the exponent is a power of the base written in
// decimal, "e" is used for bases up to 10 and "@" above. The mantissa always
// has a radix point and at least one fractional digit.
//
// The value is first normalized so that its integer part is zero, unless it
// has no exponent and its integer part is below 10000. Then as many
// significant digits as x's precision warrants are printed, rounded half up,
// without trailing zeros.
func formatFloat(x vector, base int) string {
	prec := maxInt(x.prec, 1)
	n := bitsToDigits(prec, base)

	expo := 0
	if len(x.mant) != 0 {
		if base == 10 {
			expo = x.tensExp
			x.tensExp = 0
		} else if x.tensExp != 0 {
			x = x.fold(prec + _W)
		}
	}

	x = x.changePrecision(prec)
	// extra words absorb the truncation of the divisions below
	x = x.setExp(x.exp + x.intWords() + 1)

	b := Word(base)
	for {
		ip := x.intPart()
		if len(ip) == 0 || expo == 0 && len(ip) == 1 && ip[0] < 10000 {
			break
		}
		x = x.divWord(b)
		expo++
	}

	// digits before the radix point
	var ds []byte
	if ip := x.intPart(); len(ip) > 0 {
		for _, ch := range ip.utoa(base) {
			ds = append(ds, byte(digitValue(ch)))
		}
	}
	point := len(ds)
	sig := point

	// fractional digits, one more than needed for rounding
	fr := x.mant
	if len(fr) > x.exp {
		fr = fr[:x.exp]
	}
	fr = nat(nil).set(fr).norm()
	for sig <= n && len(fr) > 0 {
		fr = fr.mulAddWW(fr, b, 0)
		var d Word
		if len(fr) > x.exp {
			d = fr[x.exp]
			fr = fr[:x.exp].norm()
		}
		ds = append(ds, byte(d))
		if sig > 0 || d != 0 {
			sig++
		}
	}

	if sig > n && len(ds) > point {
		last := ds[len(ds)-1]
		ds = ds[:len(ds)-1]
		if 2*int(last) >= base {
			i := len(ds) - 1
			for ; i >= 0; i-- {
				ds[i]++
				if int(ds[i]) < base {
					break
				}
				ds[i] = 0
			}
			if i < 0 {
				ds = append([]byte{1}, ds...)
				point++
			}
		}
	}

	buf := make([]byte, 0, len(ds)+16)
	if x.neg && !allZero(ds) {
		buf = append(buf, '-')
	}
	if point == 0 {
		buf = append(buf, '0')
	}
	for _, d := range ds[:point] {
		buf = append(buf, digits[d])
	}
	buf = append(buf, '.')
	fd := ds[point:]
	for len(fd) > 1 && fd[len(fd)-1] == 0 {
		fd = fd[:len(fd)-1]
	}
	if len(fd) == 0 {
		buf = append(buf, '0')
	}
	for _, d := range fd {
		buf = append(buf, digits[d])
	}
	if expo != 0 {
		if base <= 10 {
			buf = append(buf, 'e')
		} else {
			buf = append(buf, '@')
		}
		buf = strconv.AppendInt(buf, int64(expo), 10)
	}
	return string(buf)
}

func allZero(ds []byte) bool {
	for _, d := range ds {
		if d != 0 {
			return false
		}
	}
	return true
}
