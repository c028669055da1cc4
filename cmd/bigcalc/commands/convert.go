// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"
)

func convertCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert NUMBER...",
		Short: "Convert numbers from the input base to the output base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := o.input()
			for _, s := range args {
				x := c.Parse(s)
				if err := c.Err(); err != nil {
					return err
				}
				if !x.IsInt() && o.base != o.obase {
					o.log.Warnf("%s: fraction digits in base %d are rounded to %d bits", s, o.obase, x.Prec())
				}
				if err := o.print(cmd, x); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
