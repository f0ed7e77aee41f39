// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings that control a tacit session.
package config // import "github.com/tacit-lang/tacit/config"

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"items",  // print the grouped items of each line
	"panic",  // do not recover from errors; crash with a stack trace
	"reduce", // print every contraction made while building the tree
	"tokens", // print each token as it is scanned
	"tree",   // print the finished binding tree
	"types",  // print the Go type of each result
}

const defaultPrompt = "      "

type Config struct {
	prompt    string
	hasPrompt bool
	format    string
	debug     map[string]bool
	history   string
	output    io.Writer
	errOutput io.Writer
}

// Format returns the fmt verb used to print floating-point numbers.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// Debug reports whether the named debug flag is set.
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug sets the state of the named debug flag.
// It reports whether the name is a known flag.
func (c *Config) SetDebug(s string, state bool) bool {
	if !knownDebug(s) {
		return false
	}
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	return true
}

// EnabledDebug returns the names of the debug flags that are set, sorted.
func (c *Config) EnabledDebug() []string {
	var names []string
	for name, on := range c.debug {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func knownDebug(s string) bool {
	for _, name := range DebugFlags {
		if name == s {
			return true
		}
	}
	return false
}

func (c *Config) Prompt() string {
	if !c.hasPrompt {
		return defaultPrompt
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
	c.hasPrompt = true
}

// History returns the path of the interactive history file,
// or the empty string if history is not to be kept.
func (c *Config) History() string {
	return c.history
}

func (c *Config) SetHistory(path string) {
	c.history = path
}

// Output returns the writer to be used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed; default is os.Stdout.
func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed; default is os.Stderr.
func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}

func (c *Config) String() string {
	return fmt.Sprintf("prompt=%q format=%q debug=%v history=%q",
		c.Prompt(), c.Format(), c.EnabledDebug(), c.history)
}
