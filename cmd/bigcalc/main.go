// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc is an arbitrary precision calculator built on package
// bignum.
package main

import (
	"os"

	"github.com/db47h/bignum/cmd/bigcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
