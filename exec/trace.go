// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/tree"
	"github.com/tacit-lang/tacit/value"
)

// TypeTracer returns a Trace function for an Evaluator that prints,
// for every node evaluated, the node, its role and the Go type and
// value it produced, indented by depth.
func TypeTracer(w io.Writer, conf *config.Config) func(depth int, n tree.Node, v value.Value) {
	return func(depth int, n tree.Node, v value.Value) {
		fmt.Fprintf(w, "%s%s [%s] %T %s\n", traceIndent(depth), short(n.String()), tree.RoleOf(n), v, short(v.Sprint(conf)))
	}
}

// short returns its argument, truncating if it's longer than 50 characters.
func short(s string) string {
	if utf8.RuneCountInString(s) > 50 {
		s = string([]rune(s)[:50]) + "..."
	}
	return s
}

var indent = "| "

// traceIndent returns an indentation marker showing the depth in the tree.
func traceIndent(depth int) string {
	n := 2 * depth
	if len(indent) < n {
		indent = strings.Repeat("| ", n+10)
	}
	return indent[:n]
}
