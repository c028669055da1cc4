// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

// nat is an unsigned integer x of the form
//
//   x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type nat []Word

var natOne = nat{1}

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most nats start small and stay that way; don't over-allocate.
		return make(nat, 1)
	}
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[1] = Word(x >> _W)
	z[0] = Word(x)
	return z
}

// uint64 returns the low 64 bits of x.
func (x nat) uint64() uint64 {
	var v uint64
	if len(x) > 1 {
		v = uint64(x[1]) << _W
	}
	if len(x) > 0 {
		v |= uint64(x[0])
	}
	return v
}

// cmp compares the normalized values x and y.
func (x nat) cmp(y nat) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

func (z nat) add(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x - y. x must be >= y.
func (z nat) sub(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r) // result is r
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAddVWW(z[0:m], x, y, r)

	return z.norm()
}

func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	// determine if z can be reused
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}

	z = z.make(m + n)
	for i := range z {
		z[i] = 0
	}
	for i, d := range y {
		if d != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, d)
		}
	}

	return z.norm()
}

// sqr returns x*x.
func (z nat) sqr(x nat) nat {
	return z.mul(x, x)
}

// divW sets z to x/y and returns the remainder r.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	q = z.norm()
	return
}

// div returns q = u/v and r = u%v. v must not be 0. The quotient is written to
// z and the remainder to z2 when they can be reused.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("division by zero")
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	q, r = z.divLarge(z2, u, v)
	return
}

// divLarge implements Knuth's algorithm D (TAOCP vol. 2, 4.3.1) for
// len(uIn) >= len(vIn) >= 2 and uIn >= vIn.
func (z nat) divLarge(u, uIn, vIn nat) (q, r nat) {
	n := len(vIn)
	m := len(uIn) - n

	if alias(z, u) || alias(z, uIn) || alias(z, vIn) {
		z = nil
	}
	q = z.make(m + 1)

	// D1: normalize so that the top bit of the divisor is set.
	shift := nlz(vIn[n-1])
	v := nat(nil).make(n)
	shlVU(v, vIn, shift)

	if alias(u, uIn) || alias(u, vIn) {
		u = nil
	}
	u = u.make(len(uIn) + 1)
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	vn1 := v[n-1]
	vn2 := v[n-2]
	qhatv := nat(nil).make(n + 1)

	// D2
	for j := m; j >= 0; j-- {
		// D3
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			// x1 | x2 = q̂v_{n-2}
			x1, x2 := mulAddWWW(qhat, vn2, 0)
			// test if q̂v_{n-2} > br̂ + u_{j+n-2}
			ujn2 := u[j+n-2]
			for x1 > rhat || x1 == rhat && x2 > ujn2 {
				qhat--
				prevRhat := rhat
				rhat += vn1
				// v[n-1] >= 0, so this tests for overflow.
				if rhat < prevRhat {
					break
				}
				x1, x2 = mulAddWWW(qhat, vn2, 0)
			}
		}

		// D4
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	q = q.norm()
	shrVU(u, u, shift)
	r = u[:n].norm()

	return q, r
}

// shl sets z to x << s.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	for i := n - m - 1; i >= 0; i-- {
		z[i] = 0
	}

	return z.norm()
}

// shr sets z to x >> s.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)

	return z.norm()
}

// bitLen returns the length of x in bits. x must be normalized.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len32(uint32(x[i]))
	}
	return 0
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % _W) & 1)
}

// trailingZeroWords returns the number of consecutive zero words at the bottom
// of x.
func (x nat) trailingZeroWords() int {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	return i
}

// sticky returns 1 if there's a 1 bit within the i least significant words,
// otherwise it returns 0.
func (x nat) sticky(i int) Word {
	if i > len(x) {
		i = len(x)
	}
	for _, w := range x[:i] {
		if w != 0 {
			return 1
		}
	}
	return 0
}

func (z nat) and(x, y nat) nat {
	m := len(x)
	n := len(y)
	if m > n {
		m = n
	}
	// m <= n

	z = z.make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}

	return z.norm()
}

func (z nat) or(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

func (z nat) xor(x, y nat) nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])

	return z.norm()
}

// not complements every word of x.
func (z nat) not(x nat) nat {
	z = z.make(len(x))
	for i, w := range x {
		z[i] = ^w
	}
	return z.norm()
}

// expWW computes x**y
func (z nat) expWW(x, y Word) nat {
	return z.expNN(nat(nil).setWord(x), nat(nil).setWord(y))
}

// expNN computes x**y by binary exponentiation.
func (z nat) expNN(x, y nat) nat {
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.setWord(1)
	if len(y) == 0 {
		return z
	}
	if len(x) == 0 {
		return z[:0]
	}
	for i := y.bitLen() - 1; i >= 0; i-- {
		z = nat(nil).sqr(z)
		if y.bit(uint(i)) != 0 {
			z = nat(nil).mul(z, x)
		}
	}
	return z
}

// pow10 returns 10**n for n >= 0.
func pow10(n int) nat {
	switch {
	case n < len(pow10tab):
		return nat(nil).setUint64(pow10tab[n])
	case uint64(n) <= _M:
		return nat(nil).expWW(10, Word(n))
	}
	return nat(nil).expNN(nat(nil).setWord(10), nat(nil).setUint64(uint64(n)))
}

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// alias reports whether x and y share the same base array.
// Note: alias assumes that the capacity of underlying arrays
//       is never changed for nat values; i.e. that there are
//       no 3-operand slice expressions in this code (or worse,
//       reflect-based operations to the same effect).
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
