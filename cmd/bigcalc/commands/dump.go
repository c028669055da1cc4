// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func dumpCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump NUMBER...",
		Short: "Print the internal representation of numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := o.input()
			w := cmd.OutOrStdout()
			cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}
			for _, s := range args {
				x := c.Parse(s)
				if err := c.Err(); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s: prec=%d int=%t bits=%d\n", s, x.Prec(), x.IsInt(), x.BitCount())
				cfg.Fdump(w, x)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
