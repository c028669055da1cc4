// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func tensVec(m int64, tens int) vector {
	v := newVector(m)
	v.tensExp = tens
	return v
}

func TestCmpVec(t *testing.T) {
	half := vector{mant: nat{_H}, exp: 1}
	for i, tc := range []struct {
		x, y vector
		want int
	}{
		{vector{}, vector{}, 0},
		{newVector(-1), vector{}, -1},
		{vector{}, newVector(-1), 1},
		{tensVec(1, 2), newVector(100), 0},
		{tensVec(1, 2), newVector(99), 1},
		{tensVec(-1, 2), newVector(-99), -1},
		{half, tensVec(5, -1), 0},
		{half, tensVec(49, -2), 1},
		{half.negate(), tensVec(-51, -2), 1},
		{newVector(7).setExp(3), newVector(7), 0},
	} {
		require.Equal(t, tc.want, cmpVec(tc.x, tc.y), "#%d: cmp(%v, %v)", i, tc.x, tc.y)
	}
}

func TestAddVecTens(t *testing.T) {
	// 15e1 + 25e-2 = 150.25
	z := addVec(tensVec(15, 1), tensVec(25, -2))
	require.Equal(t, -2, z.tensExp)
	require.Zero(t, cmpVec(z, tensVec(15025, -2)))

	z = subVec(tensVec(15, 1), tensVec(15, 1))
	require.Zero(t, z.sign())
	require.False(t, z.neg)

	half := vector{mant: nat{_H}, exp: 1}
	z = addVec(half, newVector(-3))
	require.Zero(t, cmpVec(z, tensVec(-25, -1)))
}

func TestIntDivVec(t *testing.T) {
	q, r, err := intDivVec(tensVec(12, 1), newVector(7))
	require.NoError(t, err)
	require.Zero(t, cmpVec(q, newVector(17)))
	require.Zero(t, cmpVec(r, newVector(1)))

	q, r, err = intDivVec(newVector(-7), newVector(2))
	require.NoError(t, err)
	require.Zero(t, cmpVec(q, newVector(-3)))
	require.Zero(t, cmpVec(r, newVector(-1)))

	_, _, err = intDivVec(vector{mant: nat{1}, exp: 1}, newVector(2))
	require.True(t, ErrNotInteger.Has(err), "%+v", err)
	_, _, err = intDivVec(newVector(1), tensVec(1, -1))
	require.True(t, ErrNotInteger.Has(err), "%+v", err)
	_, _, err = intDivVec(newVector(1), vector{})
	require.True(t, ErrInvalidArg.Has(err), "%+v", err)
}

func TestModVec(t *testing.T) {
	type TC struct {
		x, y, want int64
		Mark       error
	}

	tcs := []TC{
		{7, 3, 1, oops.New("unexpected")},
		{-7, 3, 2, oops.New("unexpected")},
		{7, -3, -2, oops.New("unexpected")},
		{-7, -3, -1, oops.New("unexpected")},
		{6, -3, 0, oops.New("unexpected")},
		{0, 5, 0, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d mod %d", i, tc.x, tc.y), func(t *testing.T) {
			r, err := modVec(newVector(tc.x), newVector(tc.y))
			require.NoError(t, err, tc.Mark)
			require.Zero(t, cmpVec(r, newVector(tc.want)), tc.Mark)
		})
	}
}

func TestDivVec(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		x := vector{mant: randNat(r, 1+r.Intn(6)), exp: r.Intn(4), tensExp: r.Intn(5) - 2, neg: r.Intn(2) == 0}.norm()
		y := vector{mant: randNat(r, 1+r.Intn(4)), exp: r.Intn(4), tensExp: r.Intn(5) - 2}.norm()
		if y.isZero() {
			continue
		}
		prec := 32 + r.Intn(200)
		q, rem, err := divVec(x, y, prec)
		require.NoError(t, err)
		// x == q*y + rem exactly
		require.Zero(t, cmpVec(addVec(mulVec(q, y), rem), x), "x = %v, y = %v", x, y)
		require.GreaterOrEqual(t, q.exp, fracWords(prec))
		if !q.isZero() {
			require.GreaterOrEqual(t, q.mant.bitLen(), prec)
		}
		require.Equal(t, -1, rem.mant.cmp(y.mant))
	}

	_, _, err := divVec(newVector(1), vector{}, 64)
	require.True(t, ErrInvalidArg.Has(err))
}

func TestGcdVec(t *testing.T) {
	for _, tc := range []struct{ x, y, want int64 }{
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{17, 5, 1},
	} {
		g, err := gcdVec(newVector(tc.x), newVector(tc.y))
		require.NoError(t, err)
		require.Zero(t, cmpVec(g, newVector(tc.want)), "gcd(%d, %d) = %v", tc.x, tc.y, g)
	}

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		x, y := randNat(r, 1+r.Intn(5)), randNat(r, 1+r.Intn(5))
		g, err := gcdVec(vector{mant: x}, vector{mant: y})
		require.NoError(t, err)
		requireBig(t, new(big.Int).GCD(nil, nil, toBig(x), toBig(y)), g.mant)
	}

	_, err := gcdVec(tensVec(5, -1), newVector(3))
	require.True(t, ErrNotInteger.Has(err))
}

func TestShiftVec(t *testing.T) {
	z, err := shlVec(newVector(-3), 70)
	require.NoError(t, err)
	require.Equal(t, "-3541774862152233910272", string(z.mant.itoa(z.neg, 10)))

	z, err = shrVec(z, 70)
	require.NoError(t, err)
	require.Zero(t, cmpVec(z, newVector(-3)))

	z, err = shrVec(newVector(-5), 1)
	require.NoError(t, err)
	require.Zero(t, cmpVec(z, newVector(-2)))

	z, err = shrVec(newVector(5), 3)
	require.NoError(t, err)
	require.True(t, z.isZero())
	require.False(t, z.neg)

	z, err = shlVec(tensVec(3, 2), 1)
	require.NoError(t, err)
	require.Zero(t, cmpVec(z, newVector(600)))

	_, err = shlVec(newVector(1), -1)
	require.True(t, ErrInvalidArg.Has(err))
	_, err = shrVec(newVector(1), -1)
	require.True(t, ErrInvalidArg.Has(err))
	_, err = shlVec(tensVec(1, -1), 1)
	require.True(t, ErrNotInteger.Has(err))
}

func TestBitwiseVec(t *testing.T) {
	for _, tc := range []struct {
		name    string
		f       func(x, y vector) (vector, error)
		x, y, z int64
	}{
		{"and", andVec, 12, 10, 8},
		{"or", orVec, 12, 10, 14},
		{"xor", xorVec, 12, 10, 6},
		{"and", andVec, -12, 10, 8},
		{"or", orVec, -12, -10, 14},
		{"xor", xorVec, 12, 12, 0},
		{"or", orVec, 0, 0, 0},
	} {
		z, err := tc.f(newVector(tc.x), newVector(tc.y))
		require.NoError(t, err)
		require.Zero(t, cmpVec(z, newVector(tc.z)), "%d %s %d = %v", tc.x, tc.name, tc.y, z)
	}

	z, err := notVec(newVector(0xf0))
	require.NoError(t, err)
	require.Zero(t, cmpVec(z, newVector(4294967055)))

	_, err = andVec(tensVec(5, -1), newVector(1))
	require.True(t, ErrNotInteger.Has(err))
	_, err = notVec(vector{mant: nat{1}, exp: 1})
	require.True(t, ErrNotInteger.Has(err))
}
