// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands defines the bigcalc CLI.
//
// Commands
//
//   - eval      Apply an operation to numbers: bigcalc eval add 1 2
//   - ops       List the operations known to eval
//   - convert   Convert numbers from the input base to the output base
//   - pi        Print π
//   - dump      Print the internal representation of numbers
//
// Global flags select the working precision in bits (--prec), the base of
// number literals (--base) and the base of results (--obase, defaults to
// --base). Errors and warnings go to stderr, results to stdout.
package commands
