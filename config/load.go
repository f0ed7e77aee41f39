// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// file is the layout of a YAML configuration file:
//
//	prompt: "> "
//	format: "%.4g"
//	debug: [tree, reduce]
//	history: ~/.tacit_history
type file struct {
	Prompt  *string  `yaml:"prompt"`
	Format  string   `yaml:"format"`
	Debug   []string `yaml:"debug"`
	History string   `yaml:"history"`
}

// Load reads the YAML configuration file at path into c.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse sets c from the YAML configuration in data.
// Fields absent from data leave c unchanged; unknown fields are an error.
func (c *Config) Parse(data []byte) error {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	if f.Format != "" {
		c.SetFormat(f.Format)
	}
	if f.History != "" {
		c.SetHistory(env.ExpandUser(f.History))
	}
	return c.setDebugList(f.Debug)
}

// LoadEnv applies the TACIT_* environment variables to c:
// TACIT_PROMPT, TACIT_FORMAT, TACIT_DEBUG (comma-separated flag names)
// and TACIT_HISTORY.
func (c *Config) LoadEnv() error {
	if env.Has("TACIT_PROMPT") {
		c.SetPrompt(env.Str("TACIT_PROMPT"))
	}
	if s := env.Str("TACIT_FORMAT"); s != "" {
		c.SetFormat(s)
	}
	if s := env.Str("TACIT_HISTORY"); s != "" {
		c.SetHistory(env.ExpandUser(s))
	}
	return c.SetDebugList(env.Str("TACIT_DEBUG"))
}

// SetDebugList enables each debug flag named in the comma-separated list.
func (c *Config) SetDebugList(list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return c.setDebugList(strings.Split(list, ","))
}

func (c *Config) setDebugList(names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !c.SetDebug(name, true) {
			return fmt.Errorf("unknown debug flag %q", name)
		}
	}
	return nil
}
