// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to tacit,
// suitable for wrapping in a UI or embedding in another program.
// It exposes only primitive types. It's also handy for testing.
//
// The package holds one configuration, so only one execution
// stream (Eval or Demo) can be active at a time.
package mobile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/parse"
	"github.com/tacit-lang/tacit/run"
	"github.com/tacit-lang/tacit/scan"
)

var conf config.Config

// Eval evaluates the input string and returns its output.
// Evaluation continues past a line that fails; if any line failed,
// the messages are returned concatenated together in the error value.
func Eval(expr string) (result string, errors error) {
	if !strings.HasSuffix(expr, "\n") {
		expr += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)

	scanner := scan.New(&conf, " ", strings.NewReader(expr))
	parser := parse.NewParser(&conf, " ", scanner)
	for !run.Run(parser, &conf, false) {
	}
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will scan the input text line by line.
func NewDemo(input string) *Demo {
	Reset()
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return Eval(d.scanner.Text())
}

// Reset clears all state to the initial value.
func Reset() {
	conf = config.Config{}
	conf.SetPrompt("")
}

// Help returns the help text.
func Help() string {
	out, _ := Eval(")help")
	return out
}
