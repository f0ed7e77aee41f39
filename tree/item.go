// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree resolves a line of grouped items into a binding tree.
//
// Array languages cannot be parsed with fixed precedence: whether two
// adjacent things bind, and how, depends on the roles they currently play
// (array, function, function awaiting its left argument, operator awaiting
// an operand), and those roles change as neighbours are combined. Build
// therefore works on a flat sequence, repeatedly combining the adjacent
// pair with the greatest binding strength until one node is left.
package tree // import "github.com/tacit-lang/tacit/tree"

import (
	"strings"

	"github.com/tacit-lang/tacit/value"
)

// An Item is one element of the input to Build, before resolution.
// Items are produced by the parser; Groups are parenthesized runs.
type Item interface {
	String() string
	item()
}

type (
	Int       int64
	Float     float64
	Func      value.Primitive
	MonadicOp value.Operator
	DyadicOp  value.Operator
	Group     []Item
)

func (i Int) String() string       { return value.Int(i).String() }
func (f Float) String() string     { return value.Float(f).String() }
func (f Func) String() string      { return value.Primitive(f).String() }
func (o MonadicOp) String() string { return value.Operator(o).String() }
func (o DyadicOp) String() string  { return value.Operator(o).String() }

func (g Group) String() string {
	return "(" + Items(g) + ")"
}

// Items formats a sequence of items separated by spaces.
func Items(items []Item) string {
	s := make([]string, len(items))
	for i, item := range items {
		s[i] = item.String()
	}
	return strings.Join(s, " ")
}

func (Int) item()       {}
func (Float) item()     {}
func (Func) item()      {}
func (MonadicOp) item() {}
func (DyadicOp) item()  {}
func (Group) item()     {}

// resolve converts an item to its leaf node. Groups are handled by Build.
func resolve(item Item) Node {
	switch item := item.(type) {
	case Int:
		return &Literal{Value: value.Int(item)}
	case Float:
		return &Literal{Value: value.Float(item)}
	case Func:
		return &FuncRef{Fn: value.Primitive(item)}
	case MonadicOp:
		return &MonadicOpRef{Op: value.Operator(item)}
	case DyadicOp:
		return &DyadicOpRef{Op: value.Operator(item)}
	}
	panic(value.Errorf(value.InternalError, "resolve %T", item))
}
