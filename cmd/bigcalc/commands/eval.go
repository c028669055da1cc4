// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"sort"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/context"
)

type operation struct {
	arity int
	help  string
	fn    func(c *context.Context, x []*bignum.Number) *bignum.Number
}

var operations = map[string]operation{
	"add":   {2, "x + y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Add(x[0], x[1]) }},
	"sub":   {2, "x - y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Sub(x[0], x[1]) }},
	"mul":   {2, "x × y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Mul(x[0], x[1]) }},
	"fma":   {3, "x × y + z", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.FMA(x[0], x[1], x[2]) }},
	"quo":   {2, "x / y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Quo(x[0], x[1]) }},
	"div":   {2, "floored integer quotient of x and y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Div(x[0], x[1]) }},
	"mod":   {2, "x modulo y, with the sign of y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Mod(x[0], x[1]) }},
	"gcd":   {2, "greatest common divisor of x and y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Gcd(x[0], x[1]) }},
	"pow":   {2, "x ** y", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Pow(x[0], x[1]) }},
	"shl":   {2, "x shifted left by y bits", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Shl(x[0], x[1]) }},
	"shr":   {2, "x shifted right by y bits", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Shr(x[0], x[1]) }},
	"and":   {2, "bitwise and of |x| and |y|", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.And(x[0], x[1]) }},
	"or":    {2, "bitwise or of |x| and |y|", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Or(x[0], x[1]) }},
	"xor":   {2, "bitwise xor of |x| and |y|", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Xor(x[0], x[1]) }},
	"not":   {1, "complement of the words of |x|", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Not(x[0]) }},
	"neg":   {1, "-x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Neg(x[0]) }},
	"abs":   {1, "|x|", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Abs(x[0]) }},
	"floor": {1, "largest integer <= x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Floor(x[0]) }},
	"ceil":  {1, "smallest integer >= x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Ceil(x[0]) }},
	"sqrt":  {1, "square root of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Sqrt(x[0]) }},
	"sin":   {1, "sine of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Sin(x[0]) }},
	"cos":   {1, "cosine of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Cos(x[0]) }},
	"tan":   {1, "tangent of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Tan(x[0]) }},
	"asin":  {1, "arcsine of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Asin(x[0]) }},
	"acos":  {1, "arccosine of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Acos(x[0]) }},
	"atan":  {1, "arctangent of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Atan(x[0]) }},
	"exp":   {1, "e ** x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Exp(x[0]) }},
	"ln":    {1, "natural logarithm of x", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Log(x[0]) }},
	"fact":  {1, "x!", func(c *context.Context, x []*bignum.Number) *bignum.Number { return c.Factorial(x[0]) }},
}

func evalCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval OP [ARGS...]",
		Short: "Apply an operation to numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operations[args[0]]
			if !ok {
				return oops.New("unknown operation %q", args[0])
			}
			if len(args)-1 != op.arity {
				return oops.New("%s: want %d arguments, got %d", args[0], op.arity, len(args)-1)
			}

			c := o.input()
			xs := make([]*bignum.Number, op.arity)
			for i, s := range args[1:] {
				xs[i] = c.Parse(s)
			}
			z := op.fn(c, xs)
			if err := c.Err(); err != nil {
				return err
			}
			o.log.Debugf("%s%v: prec=%d int=%t", args[0], args[1:], z.Prec(), z.IsInt())
			return o.print(cmd, z)
		},
	}
	// negative numbers must not be taken for flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations known to eval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(operations))
			for name := range operations {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				op := operations[name]
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-6s %d  %s\n", name, op.arity, op.help); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
