// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for tacit.
// It is factored out of main so it can be used for tests.
package run // import "github.com/tacit-lang/tacit/run"

import (
	"fmt"
	"io"
	"strings"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/exec"
	"github.com/tacit-lang/tacit/parse"
	"github.com/tacit-lang/tacit/scan"
	"github.com/tacit-lang/tacit/tree"
	"github.com/tacit-lang/tacit/value"
)

// Run runs the parser/evaluator until EOF or error.
// The return value says whether we completed without error. If the return
// value is true, it means we ran out of data (EOF) and the run was successful.
// Typical execution is therefore to loop calling Run until it succeeds.
// Error details are reported to the configured error output stream.
func Run(p *parse.Parser, conf *config.Config, interactive bool) (success bool) {
	writer := conf.Output()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			report(p, conf, err, interactive)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		items, ok := p.Line()
		if items != nil {
			v, err := Eval(conf, items)
			if err != nil {
				if conf.Debug("panic") {
					panic(err)
				}
				report(p, conf, err, interactive)
				return false
			}
			printValue(conf, writer, v)
		}
		if !ok {
			return true
		}
	}
}

func report(p *parse.Parser, conf *config.Config, err error, interactive bool) {
	fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
	if interactive {
		fmt.Fprintln(conf.Output())
	}
}

// Eval builds the tree for one line of items and evaluates it.
// It also handles the )debug reduce, tree and types output.
func Eval(conf *config.Config, items []tree.Item) (value.Value, error) {
	writer := conf.Output()
	var b tree.Builder
	if conf.Debug("reduce") {
		b.Trace = func(nodes []tree.Node, at int) {
			fmt.Fprintln(writer, contraction(nodes, at))
		}
	}
	n, err := b.Build(items)
	if err != nil {
		return nil, err
	}
	if conf.Debug("tree") {
		fmt.Fprintln(writer, n)
	}
	var e exec.Evaluator
	if conf.Debug("types") {
		e.Trace = exec.TypeTracer(writer, conf)
	}
	return e.Evaluate(n)
}

// contraction formats the working sequence with the pair about
// to be combined marked by guillemets.
func contraction(nodes []tree.Node, at int) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == at {
			b.WriteString("«")
		}
		b.WriteString(n.String())
		if i == at+1 {
			b.WriteString("»")
		}
	}
	return b.String()
}

// printValue prints the value returned from execution, followed by a newline.
func printValue(conf *config.Config, writer io.Writer, v value.Value) {
	fmt.Fprintln(writer, v.Sprint(conf))
}

// Tacit runs the input text, printing results to stdout and errors
// to stderr. Execution stops at the first error.
// It reports whether the input ran without error.
func Tacit(conf *config.Config, input string, stdout, stderr io.Writer) bool {
	saveOut, saveErr := conf.Output(), conf.ErrOutput()
	defer func() {
		conf.SetOutput(saveOut)
		conf.SetErrOutput(saveErr)
	}()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)

	scanner := scan.New(conf, "<input>", strings.NewReader(input))
	parser := parse.NewParser(conf, "<input>", scanner)
	return Run(parser, conf, false)
}
