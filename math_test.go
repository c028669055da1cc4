// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/require"
)

// requireClose checks that got is within 2**-bits of want, relative to want
// when |want| > 1.
func requireClose(t *testing.T, want, got *Number, bits int) {
	t.Helper()
	d := got.Subtract(want, 0).Abs()
	tol, err := NewInt(1).BecomeFloat(bits + _W).ShiftRight(bits)
	require.NoError(t, err)
	if w := want.Abs(); w.GreaterThan(NewInt(1)) {
		tol = tol.Multiply(w, 0)
	}
	require.True(t, d.LessThan(tol), "got %s; want %s (2**-%d)", got, want, bits)
}

func TestSinCosExpFloat64(t *testing.T) {
	for x := -10.0; x <= 10; x += 0.37 {
		n := NewFloat(x)
		requireClose(t, NewFloat(math.Sin(x)), n.Sin(40), 45)
		requireClose(t, NewFloat(math.Cos(x)), n.Cos(40), 45)
		requireClose(t, NewFloat(math.Exp(x)), n.Exp(40), 45)
	}
	requireClose(t, NewFloat(math.Sin(100)), NewInt(100).Sin(64), 45)
	requireClose(t, NewFloat(math.Cos(-25)), NewInt(-25).Cos(64), 45)
	tan, err := NewFloat(0.5).Tan(64)
	require.NoError(t, err)
	requireClose(t, NewFloat(math.Tan(0.5)), tan, 45)
}

func TestTrigIdentities(t *testing.T) {
	for _, s := range []string{"0.1", "1.234567", "-2.5", "7.9", "12.75", "-31.4"} {
		x := MustParse(s, 10, 256)
		sin, cos := x.Sin(256), x.Cos(256)
		one := sin.Multiply(sin, 256).Add(cos.Multiply(cos, 256), 256)
		requireClose(t, NewInt(1), one, 240)

		tan, err := x.Tan(256)
		require.NoError(t, err)
		q, err := sin.Divide(cos, 256)
		require.NoError(t, err)
		requireClose(t, q, tan, 200)
	}

	require.Zero(t, NewInt(0).Sin(64).Sign())
	require.Zero(t, NewInt(0).Cos(64).Cmp(NewInt(1)))
}

func TestInverseTrig(t *testing.T) {
	const prec = 128
	halfPi, err := Pi(prec).ShiftRight(1)
	require.NoError(t, err)
	quarterPi, err := Pi(prec).ShiftRight(2)
	require.NoError(t, err)

	for _, s := range []string{"0.5", "-0.25", "1.0", "0.999", "-1.5"} {
		x := MustParse(s, 10, prec)
		a, err := x.Sin(prec).ArcSin(prec)
		require.NoError(t, err)
		requireClose(t, x, a, prec-8)
	}

	a, err := NewInt(1).ArcSin(prec)
	require.NoError(t, err)
	requireClose(t, halfPi, a, prec-8)
	a, err = NewInt(-1).ArcSin(prec)
	require.NoError(t, err)
	requireClose(t, halfPi.Negate(), a, prec-8)
	a, err = NewInt(0).ArcSin(prec)
	require.NoError(t, err)
	require.Zero(t, a.Sign())

	a, err = NewInt(0).ArcCos(prec)
	require.NoError(t, err)
	requireClose(t, halfPi, a, prec-8)
	a, err = NewInt(1).ArcCos(prec)
	require.NoError(t, err)
	requireClose(t, NewInt(0), a, prec-8)
	a, err = MustParse("-0.5", 10, prec).ArcCos(prec)
	require.NoError(t, err)
	twoThirdsPi, err := Pi(prec).ShiftLeft(1)
	require.NoError(t, err)
	twoThirdsPi, err = twoThirdsPi.Divide(NewInt(3), prec)
	require.NoError(t, err)
	requireClose(t, twoThirdsPi, a, prec-8)

	requireClose(t, quarterPi, NewInt(1).ArcTan(prec), prec-8)
	requireClose(t, quarterPi.Negate(), NewInt(-1).ArcTan(prec), prec-8)
	require.Zero(t, NewInt(0).ArcTan(prec).Sign())
	for _, x := range []float64{-3, -0.3, 0.7, 2, 1e3} {
		requireClose(t, NewFloat(math.Atan(x)), NewFloat(x).ArcTan(64), 50)
		acos, err := NewFloat(x / 1e4).ArcCos(64)
		require.NoError(t, err)
		requireClose(t, NewFloat(math.Acos(x/1e4)), acos, 50)
	}
}

func TestPi(t *testing.T) {
	const digits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

	s := Pi(200).String()
	require.True(t, strings.HasPrefix(digits, s[:58]), "got %s", s)
	require.Equal(t, 200, Pi(200).Prec())
	require.False(t, Pi(200).IsInt())

	require.Equal(t, math.Pi, Pi(53).Double())

	// results at different precisions agree
	p1000 := Pi(1000)
	requireClose(t, p1000, Pi(64), 62)
	requireClose(t, NewInt(0), p1000.Sin(1000), 980)
	require.True(t, strings.HasPrefix(p1000.String(), digits[:100]))
}

func TestPiConcurrent(t *testing.T) {
	want := Pi(300)
	got := make([]*Number, 8)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// interleave other precisions
			Pi(64 + 100*i)
			got[i] = Pi(300)
		}(i)
	}
	wg.Wait()
	for _, p := range got {
		require.Zero(t, p.Cmp(want))
		require.Equal(t, 300, p.Prec())
	}
}

func TestExpLn(t *testing.T) {
	require.Zero(t, NewInt(0).Exp(64).Cmp(NewInt(1)))
	l, err := NewInt(1).Ln(64)
	require.NoError(t, err)
	require.Zero(t, l.Sign())

	for _, s := range []string{"2.5", "-7.25", "0.001", "60"} {
		x := MustParse(s, 10, 128)
		y, err := x.Exp(128).Ln(128)
		require.NoError(t, err)
		requireClose(t, x, y, 120)
	}

	for _, s := range []string{"1e10", "0.5", "1.0001", "3e-20"} {
		x := MustParse(s, 10, 128)
		l, err := x.Ln(128)
		require.NoError(t, err)
		y := l.Exp(128)
		if x.LessThan(NewInt(1)) {
			// relative check for small values
			q, err := y.Divide(x, 128)
			require.NoError(t, err)
			requireClose(t, NewInt(1), q, 115)
		} else {
			requireClose(t, x, y, 115)
		}
	}
}

func TestSqrt(t *testing.T) {
	s, err := NewInt(16).Sqrt(64)
	require.NoError(t, err)
	require.Zero(t, s.Cmp(NewInt(4)))

	s, err = NewInt(0).Sqrt(64)
	require.NoError(t, err)
	require.Zero(t, s.Sign())

	for _, str := range []string{"2", "0.5", "1e-30", "123456789.123456789", "4e40"} {
		x := MustParse(str, 10, 128)
		s, err := x.Sqrt(128)
		require.NoError(t, err)
		sq := s.Multiply(s, 128)
		if x.LessThan(NewInt(1)) {
			q, err := sq.Divide(x, 128)
			require.NoError(t, err)
			requireClose(t, NewInt(1), q, 120)
		} else {
			requireClose(t, x, sq, 120)
		}
	}
}

// apdEval evaluates op with the arbitrary precision decimals of
// cockroachdb/apd, to 70 significant digits.
func apdEval(t *testing.T, op string, args ...string) *Number {
	t.Helper()
	ctx := apd.BaseContext.WithPrecision(70)
	xs := make([]*apd.Decimal, len(args))
	for i, s := range args {
		x, _, err := apd.NewFromString(s)
		require.NoError(t, err)
		xs[i] = x
	}
	d := new(apd.Decimal)
	var err error
	switch op {
	case "exp":
		_, err = ctx.Exp(d, xs[0])
	case "ln":
		_, err = ctx.Ln(d, xs[0])
	case "sqrt":
		_, err = ctx.Sqrt(d, xs[0])
	case "pow":
		_, err = ctx.Pow(d, xs[0], xs[1])
	case "quo":
		_, err = ctx.Quo(d, xs[0], xs[1])
	default:
		t.Fatalf("unknown op %s", op)
	}
	require.NoError(t, err)
	return MustParse(d.String(), 10, 256)
}

func TestDecimalOracle(t *testing.T) {
	const prec = 200
	type TC struct {
		op   string
		args []string
	}

	tcs := []TC{
		{"exp", []string{"0.5"}},
		{"exp", []string{"-3.75"}},
		{"exp", []string{"123.456"}},
		{"exp", []string{"1e-5"}},
		{"ln", []string{"2"}},
		{"ln", []string{"10"}},
		{"ln", []string{"123.456"}},
		{"ln", []string{"1e-5"}},
		{"ln", []string{"1e50"}},
		{"sqrt", []string{"2"}},
		{"sqrt", []string{"123.456"}},
		{"sqrt", []string{"1e-5"}},
		{"pow", []string{"2", "0.5"}},
		{"pow", []string{"10", "-1.5"}},
		{"pow", []string{"123.456", "2.25"}},
		{"pow", []string{"1.5", "-7"}},
		{"quo", []string{"1", "3"}},
		{"quo", []string{"-22", "7e-3"}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%v", i, tc.op, tc.args), func(t *testing.T) {
			want := apdEval(t, tc.op, tc.args...)
			x := MustParse(tc.args[0], 10, prec)
			var got *Number
			var err error
			switch tc.op {
			case "exp":
				got = x.Exp(prec)
			case "ln":
				got, err = x.Ln(prec)
			case "sqrt":
				got, err = x.Sqrt(prec)
			case "pow":
				got, err = x.Power(MustParse(tc.args[1], 10, prec), prec)
			case "quo":
				got, err = x.Divide(MustParse(tc.args[1], 10, prec), prec)
			}
			require.NoError(t, err)
			require.Equal(t, prec, got.Prec())
			if want.Abs().LessThan(NewInt(1)) {
				q, err := got.Divide(want, prec)
				require.NoError(t, err)
				requireClose(t, NewInt(1), q, prec-10)
			} else {
				requireClose(t, want, got, prec-10)
			}
		})
	}
}
