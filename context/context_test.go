// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context_test

import (
	"testing"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/context"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := context.New(0, 0)
	require.Equal(t, context.DefaultPrec, c.Prec())
	require.Equal(t, context.DefaultBase, c.Base())
	require.NoError(t, c.Err())

	c.SetPrec(200).SetBase(16)
	require.Equal(t, 200, c.Prec())
	require.Equal(t, 16, c.Base())
}

func TestInvalidBase(t *testing.T) {
	c := context.New(64, 37)
	require.Equal(t, context.DefaultBase, c.Base())
	err := c.Err()
	require.True(t, bignum.ErrInvalidArg.Has(err), "%+v", err)

	c.SetBase(8).SetBase(1)
	require.Equal(t, 8, c.Base())
	require.Error(t, c.Err())
	require.NoError(t, c.Err())
}

func TestStickyError(t *testing.T) {
	c := context.New(64, 10)
	one, zero := c.NewInt(1), c.NewInt(0)

	require.Nil(t, c.Quo(one, zero))
	// nil operands are not looked at while c is in an error state
	require.Nil(t, c.Add(nil, nil))
	require.Nil(t, c.Sqrt(nil))
	require.Nil(t, c.Parse("42"))
	require.Empty(t, c.Text(one))

	err := c.Err()
	require.True(t, bignum.Error.Has(err))
	require.True(t, bignum.ErrInvalidArg.Has(err))
	require.NoError(t, c.Err())

	require.Equal(t, "42", c.Text(c.Parse("42")))
	require.NoError(t, c.Err())

	require.Nil(t, c.Mod(c.Parse("1.5"), one))
	require.True(t, bignum.ErrNotInteger.Has(c.Err()))
	require.Nil(t, c.Log(c.NewInt(-1)))
	require.True(t, bignum.ErrInvalidArg.Has(c.Err()))
	require.Nil(t, c.Parse("1.2.3"))
	require.True(t, bignum.ErrInvalidArg.Has(c.Err()))
}

func TestContextPrecision(t *testing.T) {
	c := context.New(150, 10)
	three := c.NewInt(3)
	require.True(t, three.IsInt())

	q := c.Quo(c.NewInt(1), three)
	require.NoError(t, c.Err())
	require.Equal(t, 150, q.Prec())
	require.False(t, q.IsInt())

	require.Equal(t, 150, c.Pi().Prec())
	require.Equal(t, 150, c.Exp(q).Prec())
	require.Equal(t, 150, c.NewFloat(0.5).Prec())
	require.Zero(t, c.NewFloat(0.5).Cmp(c.Parse("0.5")))

	// integer ops stay exact
	f := c.Factorial(c.NewInt(25))
	require.True(t, f.IsInt())
	require.Equal(t, "15511210043330985984000000", c.Text(f))
	require.NoError(t, c.Err())
}

func TestContextBase(t *testing.T) {
	c := context.New(64, 16)
	x := c.Parse("ff")
	require.Equal(t, "ff", c.Text(x))
	require.Equal(t, "255", x.String())

	four := c.Parse("4")
	for _, tc := range []struct {
		got  *bignum.Number
		want string
	}{
		{c.Shl(x, four), "ff0"},
		{c.Shr(x, four), "f"},
		{c.And(x, c.Parse("f0")), "f0"},
		{c.Or(c.Parse("f"), c.Parse("f0")), "ff"},
		{c.Xor(x, c.Parse("f")), "f0"},
		{c.Div(x, c.Parse("10")), "f"},
		{c.Mod(x, c.Parse("10")), "f"},
		{c.Gcd(x, c.Parse("33")), "33"},
		{c.Neg(x), "-ff"},
		{c.Abs(c.Neg(x)), "ff"},
	} {
		require.Equal(t, tc.want, c.Text(tc.got))
	}
	require.NoError(t, c.Err())
}
