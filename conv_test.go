// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		b := toBig(randNat(r, r.Intn(8)))
		if i&1 != 0 {
			b.Neg(b)
		}
		for base := 2; base <= MaxBase; base++ {
			s := b.Text(base)
			x, err := Parse(s, base, b.BitLen())
			require.NoError(t, err, "base %d: %s", base, s)
			require.True(t, x.IsInt())
			got, err := x.Text(base)
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	}
}

func TestParseInt(t *testing.T) {
	for _, tc := range []struct {
		s    string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"+42", 10, "42"},
		{"007", 8, "7"},
		{"FF", 16, "255"},
		{"ff", 16, "255"},
		{"1e5", 16, "485"},
		{"Zz", 36, "1295"},
		{"-101", 2, "-5"},
		{"123456789012345678901234567890", 10, "123456789012345678901234567890"},
	} {
		x, err := Parse(tc.s, tc.base, 0)
		require.NoError(t, err, "%q", tc.s)
		require.True(t, x.IsInt(), "%q", tc.s)
		require.Equal(t, tc.want, x.String(), "%q base %d", tc.s, tc.base)
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		s    string
		base int
		Mark error
	}

	tcs := []TC{
		{"", 10, oops.New("unexpected")},
		{"-", 10, oops.New("unexpected")},
		{".", 10, oops.New("unexpected")},
		{"+e5", 10, oops.New("unexpected")},
		{"1.2.3", 10, oops.New("unexpected")},
		{"12a", 10, oops.New("unexpected")},
		{"g", 16, oops.New("unexpected")},
		{"2", 2, oops.New("unexpected")},
		{"1e", 10, oops.New("unexpected")},
		{"1ex", 10, oops.New("unexpected")},
		{"1@", 16, oops.New("unexpected")},
		{"1 ", 10, oops.New("unexpected")},
		{"1", 1, oops.New("unexpected")},
		{"1", 37, oops.New("unexpected")},
		{"1@4294967297", 2, oops.New("unexpected")},
		{"1e4294967296", 10, oops.New("unexpected")},
		{"1e99999999999999999999", 10, oops.New("unexpected")},
		{"1e-16777217", 10, oops.New("unexpected")},
		{"1@16777217", 16, oops.New("unexpected")},
		{"0.1e-16777216", 10, oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.s), func(t *testing.T) {
			x, err := Parse(tc.s, tc.base, 64)
			require.Error(t, err, tc.Mark)
			require.Nil(t, x, tc.Mark)
			require.True(t, Error.Has(err), tc.Mark)
			require.True(t, ErrInvalidArg.Has(err), tc.Mark)
		})
	}

	require.Panics(t, func() { MustParse("x", 10, 0) })
}

func TestExponentBound(t *testing.T) {
	x, err := Parse("1e16777216", 10, 64)
	require.NoError(t, err)
	require.Equal(t, 1, x.Sign())
	x, err = Parse("-1@-1000", 36, 64)
	require.NoError(t, err)
	require.Equal(t, -1, x.Sign())

	f := MustParse("1e5000", 10, 0).Floor()
	require.True(t, f.IsInt())
	s := f.String()
	require.Len(t, s, 5001)
	require.Equal(t, "1", s[:1])
	require.Equal(t, 1, f.Sign())
}

func TestFloatFormat(t *testing.T) {
	type TC struct {
		s    string
		base int
		prec int
		want string
	}

	tcs := []TC{
		{"2.5", 10, 64, "2.5"},
		{"-2.5", 10, 64, "-2.5"},
		{"0.1", 10, 64, "0.1"},
		{"100.0", 10, 64, "100.0"},
		{"1234.5", 10, 64, "1234.5"},
		{"12345.0", 10, 64, "0.12345e5"},
		{"1e3", 10, 64, "0.1e4"},
		{"0.001", 10, 64, "0.1e-2"},
		{"1.5e-30", 10, 64, "0.15e-29"},
		{"-1.5E+30", 10, 64, "-0.15e31"},
		{"0.0", 10, 64, "0.0"},
		{"-0.0", 10, 64, "0.0"},
		{".5", 10, 0, "0.5"},
		{"0.1", 2, 8, "0.1"},
		{"ff.8", 16, 0, "ff.8"},
		{"1@2", 16, 0, "100.0"},
		{"z.i", 36, 0, "z.i"},
		{"1@-1", 16, 0, "0.1"},
		{"1@-3", 16, 64, "0.001"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.s), func(t *testing.T) {
			x, err := Parse(tc.s, tc.base, tc.prec)
			require.NoError(t, err)
			require.False(t, x.IsInt())
			got, err := x.Text(tc.base)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFormatRounding(t *testing.T) {
	// 2/3 at 64 bits prints 20 significant digits, the last one rounded up
	x, err := NewInt(2).Divide(NewInt(3), 64)
	require.NoError(t, err)
	require.Equal(t, "0.66666666666666666667", x.String())

	// a carry out of the leading digit moves the radix point
	x = MustParse("9.99999999", 10, 0).SetPrecision(10)
	require.Equal(t, "10.0", x.String())
}

func TestLiteralPrecision(t *testing.T) {
	for _, tc := range []struct {
		s          string
		prec, want int
	}{
		{"3.14159265358979323846264338327950288", 32, 120},
		{"0.00012", 0, 7},
		{"1.5", 200, 200},
		{"1e100", 0, 4},
		{"12", 0, 0},
	} {
		x := MustParse(tc.s, 10, tc.prec)
		require.Equal(t, tc.want, x.Prec(), "%s", tc.s)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		f := r.NormFloat64() * math.Pow(10, float64(r.Intn(41)-20))
		x := NewFloat(f)
		require.Equal(t, f, x.Double())

		s := x.BecomeFloat(64).String()
		y, err := Parse(s, 10, 64)
		require.NoError(t, err)
		require.InEpsilon(t, f, y.Double(), 1e-15, "%v -> %s", f, s)
	}
}

func TestTextBases(t *testing.T) {
	x := MustParse("255", 10, 0)
	for _, tc := range []struct {
		base int
		want string
	}{
		{2, "11111111"}, {8, "377"}, {16, "ff"}, {36, "73"},
	} {
		s, err := x.Text(tc.base)
		require.NoError(t, err)
		require.Equal(t, tc.want, s)
	}

	_, err := x.Text(1)
	require.True(t, ErrInvalidArg.Has(err))
	_, err = x.Text(MaxBase + 1)
	require.True(t, ErrInvalidArg.Has(err))

	b, _ := new(big.Int).SetString("-123456789abcdef0123456789", 16)
	x = MustParse(b.Text(16), 16, 0)
	s, err := x.Text(7)
	require.NoError(t, err)
	require.Equal(t, b.Text(7), s)
}
