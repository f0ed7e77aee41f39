// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"io"
	"strings"
	"testing"
)

// These just test that the wrapper works.

func TestEval(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"23", "23\n"},
		{"1 ÷ 3", "0.3333333333333333\n"},
		{")format \"%.2f\"\n1 ÷ 3", "0.33\n"},
		{"(+ × -) 5", "¯25\n"},
	}
	for _, test := range tests {
		Reset()
		out, err := Eval(test.input)
		if err != nil {
			t.Errorf("evaluating %q: %v", test.input, err)
			continue
		}
		if out != test.output {
			t.Errorf("%q: expected %q; got %q", test.input, test.output, out)
		}
	}
}

func TestEvalError(t *testing.T) {
	var tests = []struct {
		input string
		error string
	}{
		{"'x", "unterminated"},
		{"1 ÷ 0", "DOMAIN ERROR: division by zero"},
		{"2 ∊ 3", "NONCE ERROR"},
		{"(1 2", "unmatched ("},
	}
	for _, test := range tests {
		Reset()
		_, err := Eval(test.input)
		if err == nil {
			t.Errorf("evaluating %q: expected %q; got nothing", test.input, test.error)
			continue
		}
		if !strings.Contains(err.Error(), test.error) {
			t.Errorf("%q: expected %q; got %q", test.input, test.error, err)
		}
	}
}

func TestHelp(t *testing.T) {
	Reset()
	if h := Help(); !strings.Contains(h, "Functions") {
		t.Errorf("help text missing sections: %q", h)
	}
}

const demoText = `⍝ This is a demo.
23
2 ∊ 3
1 ÷ 0 ⍝ Cause an error.
1 2 3 × 2 ⍝ Keep going
`

const demoOut = `23
2 4 6
`

const demoErr = " :1: NONCE ERROR: function ∊ not implemented\n :1: DOMAIN ERROR: division by zero\n"

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	results := make([]byte, 0, 100)
	errors := make([]byte, 0, 100)
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errors = append(errors, err.Error()...)
		}
	}
	if demoOut != string(results) {
		t.Fatalf("expected %q; got %q", demoOut, results)
	}
	if demoErr != string(errors) {
		t.Fatalf("expected errors %q; got %q", demoErr, errors)
	}
}
