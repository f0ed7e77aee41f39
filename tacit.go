// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/parse"
	"github.com/tacit-lang/tacit/run"
	"github.com/tacit-lang/tacit/scan"
)

var (
	configFile = flag.String("config", "", "YAML configuration `file`; default $TACIT_CONFIG")
	execute    = flag.String("e", "", "execute `expression` and exit")
	format     = flag.String("format", "", "fmt `format` for printing floating-point values")
	prompt     = flag.String("prompt", "", "interactive `prompt`")
	debug      = flag.String("debug", "", "comma-separated list of debug `flags` to enable")
)

var (
	conf  config.Config
	isTTY = func(uintptr) bool { return false }
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tacit: ")

	flag.Usage = usage
	flag.Parse()

	if err := configure(); err != nil {
		log.Fatal(err)
	}

	if *execute != "" {
		if !run.Tacit(&conf, *execute, conf.Output(), conf.ErrOutput()) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			fd, err := os.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			scanner := scan.New(&conf, name, bufio.NewReader(fd))
			parser := parse.NewParser(&conf, name, scanner)
			ok := run.Run(parser, &conf, false)
			fd.Close()
			if !ok {
				os.Exit(1)
			}
		}
		return
	}

	if isTTY(os.Stdin.Fd()) {
		repl()
		return
	}
	scanner := scan.New(&conf, "<stdin>", bufio.NewReader(os.Stdin))
	parser := parse.NewParser(&conf, "<stdin>", scanner)
	for !run.Run(parser, &conf, false) {
	}
}

// configure applies, in increasing precedence, the configuration file,
// the environment and the command-line flags.
func configure() error {
	path := *configFile
	if path == "" {
		path = os.Getenv("TACIT_CONFIG")
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return err
		}
	}
	if err := conf.LoadEnv(); err != nil {
		return err
	}
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			conf.SetFormat(*format)
		case "prompt":
			conf.SetPrompt(*prompt)
		case "debug":
			if e := conf.SetDebugList(*debug); e != nil {
				err = e
			}
		}
	})
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tacit [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Debug flags: %s\n", strings.Join(config.DebugFlags, ", "))
	os.Exit(2)
}
