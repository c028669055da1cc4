// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"math"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
)

func piCmd(o *options) *cobra.Command {
	var digits int
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Print π",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if digits < 0 {
				return oops.New("invalid number of digits %d", digits)
			}
			c := o.input()
			if digits > 0 {
				// a few guard bits keep the last digit exact
				c.SetPrec(int(math.Ceil(float64(digits)*math.Log2(float64(o.obase)))) + 8)
			}
			o.log.Debugf("computing π to %d bits", c.Prec())
			return o.print(cmd, c.Pi())
		},
	}
	cmd.Flags().IntVarP(&digits, "digits", "d", 0, "number of digits in the output base (overrides --prec)")
	return cmd
}
