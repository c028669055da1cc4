// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/context"
)

const defaultPrec = 128

// options holds the global flags shared by all subcommands.
type options struct {
	prec    int
	base    int
	obase   int
	verbose bool

	log *logger
}

// input returns a context for parsing and computing.
func (o *options) input() *context.Context {
	return context.New(o.prec, o.base)
}

// print writes x to the command's output in the output base.
func (o *options) print(cmd *cobra.Command, x *bignum.Number) error {
	out := context.New(o.prec, o.obase)
	s := out.Text(x)
	if err := out.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func newRoot() *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary precision calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.log = &logger{w: cmd.ErrOrStderr(), verbose: o.verbose}
			if o.prec <= 0 {
				return oops.New("invalid precision %d", o.prec)
			}
			if o.obase == 0 {
				o.obase = o.base
			}
			for _, b := range []int{o.base, o.obase} {
				if b < 2 || b > bignum.MaxBase {
					return oops.New("invalid base %d", b)
				}
			}
			o.log.Debugf("prec=%d base=%d obase=%d", o.prec, o.base, o.obase)
			return nil
		},
	}

	root.PersistentFlags().IntVarP(&o.prec, "prec", "p", defaultPrec, "working precision in bits")
	root.PersistentFlags().IntVarP(&o.base, "base", "b", 10, "base of number literals")
	root.PersistentFlags().IntVarP(&o.obase, "obase", "o", 0, "base of results (default --base)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "print debug information")

	root.AddCommand(evalCmd(o), opsCmd(), convertCmd(o), piCmd(o), dumpCmd(o))
	return root
}

// Execute runs the bigcalc command line and reports errors on stderr.
func Execute() error {
	root := newRoot()
	err := root.Execute()
	if err != nil {
		(&logger{w: root.ErrOrStderr()}).Error(err)
	}
	return err
}
