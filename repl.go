// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/tacit-lang/tacit/parse"
	"github.com/tacit-lang/tacit/run"
	"github.com/tacit-lang/tacit/scan"
)

// repl reads lines from the terminal with editing and history
// and runs each one. An error ends only the line that caused it.
func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if path := conf.History(); path != "" {
		if f, err := os.Open(path); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(path)
			if err != nil {
				log.Print(err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(conf.Prompt())
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(conf.Output())
			return
		}
		if err != nil {
			log.Print(err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		scanner := scan.New(&conf, "<stdin>", strings.NewReader(line))
		parser := parse.NewParser(&conf, "<stdin>", scanner)
		run.Run(parser, &conf, false)
	}
}
