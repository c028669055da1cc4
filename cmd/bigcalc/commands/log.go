// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed).FprintfFunc()
	yellow = color.New(color.FgYellow).FprintfFunc()
	faint  = color.New(color.Faint).FprintfFunc()
)

// logger writes colored diagnostics. Debug output is only written in verbose
// mode.
type logger struct {
	w       io.Writer
	verbose bool
}

func (l *logger) Error(err error) {
	red(l.w, "Error ")
	fmt.Fprintln(l.w, err)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	yellow(l.w, "Warning ")
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	faint(l.w, format+"\n", args...)
}
