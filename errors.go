// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "github.com/zeebo/errs"

// Error classes. Every error returned by this package belongs to Error, and
// to exactly one of ErrNotInteger or ErrInvalidArg.
//
// Use the Has method of a class to test for it:
//
//	if bignum.ErrNotInteger.Has(err) {
//		// ...
//	}
var (
	// Error is the class of all errors returned by package bignum.
	Error = errs.Class("bignum")

	// ErrNotInteger is returned by integer-only operations applied to a
	// value with a fractional part.
	ErrNotInteger = errs.Class("not an integer")

	// ErrInvalidArg is returned for arguments outside of an operation's
	// domain: division by zero, negative shift amounts, out of range bases,
	// malformed literals, and so on.
	ErrInvalidArg = errs.Class("invalid argument")
)

var errDivByZero = ErrInvalidArg.New("division by zero")
