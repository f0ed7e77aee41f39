// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"strings"

	"github.com/tacit-lang/tacit/value"
)

// A Node is a resolved element of a binding tree. Every node is owned
// by exactly one parent.
//
// The String methods print an unambiguous form used by )debug tree:
//
//	<1 2 3>      array literal
//	(+ 5)        monadic call
//	(1 + 2)      dyadic call
//	(1 + _)      function with its left argument bound
//	(+ ⍨)        operator applied to an operand
//	(_ ⍤ -)      dyadic operator with its right operand bound
//	(+ ⍤ -)      dyadic operator applied
//	[f g]        atop
//	[f g h]      fork
//	{f}          parenthesized function
type Node interface {
	String() string
	node()
}

// Literal is a number.
type Literal struct {
	Value value.Scalar
}

// ArrayLiteral is a strand of juxtaposed values. Paren marks an array
// written in parentheses; it is never spliced into an enclosing strand.
type ArrayLiteral struct {
	Elems []Node
	Paren bool
}

type FuncRef struct {
	Fn value.Primitive
}

type MonadicOpRef struct {
	Op value.Operator
}

type DyadicOpRef struct {
	Op value.Operator
}

// FunctionWrap is a function written in parentheses.
type FunctionWrap struct {
	Fn Node
}

// LeftBound is a function with its left argument staged,
// waiting for a right argument.
type LeftBound struct {
	Arg, Fn Node
}

type MonadicCall struct {
	Fn, Right Node
}

type DyadicCall struct {
	Left, Fn, Right Node
}

// OperatorCall is a monadic operator applied to its operand:
// a derived function.
type OperatorCall struct {
	Operand, Op Node
}

// RightBound is a dyadic operator with its right operand staged,
// waiting for a left operand.
type RightBound struct {
	Op, Operand Node
}

type DyadicOperatorCall struct {
	Left, Op, Right Node
}

type Atop struct {
	F, G Node
}

type Fork struct {
	F, G, H Node
}

// Pending holds the working sequence while Build reduces it.
// It never appears in a finished tree.
type Pending struct {
	Nodes []Node
}

func (n *Literal) String() string { return n.Value.String() }

func (n *ArrayLiteral) String() string { return "<" + join(n.Elems) + ">" }

func (n *FuncRef) String() string { return n.Fn.String() }

func (n *MonadicOpRef) String() string { return n.Op.String() }

func (n *DyadicOpRef) String() string { return n.Op.String() }

func (n *FunctionWrap) String() string { return "{" + n.Fn.String() + "}" }

func (n *LeftBound) String() string { return fmt.Sprintf("(%s %s _)", n.Arg, n.Fn) }

func (n *MonadicCall) String() string { return fmt.Sprintf("(%s %s)", n.Fn, n.Right) }

func (n *DyadicCall) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Fn, n.Right)
}

func (n *OperatorCall) String() string { return fmt.Sprintf("(%s %s)", n.Operand, n.Op) }

func (n *RightBound) String() string { return fmt.Sprintf("(_ %s %s)", n.Op, n.Operand) }

func (n *DyadicOperatorCall) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *Atop) String() string { return fmt.Sprintf("[%s %s]", n.F, n.G) }

func (n *Fork) String() string { return fmt.Sprintf("[%s %s %s]", n.F, n.G, n.H) }

func (n *Pending) String() string { return "pending<" + join(n.Nodes) + ">" }

func join(nodes []Node) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.String()
	}
	return strings.Join(s, " ")
}

func (*Literal) node()            {}
func (*ArrayLiteral) node()       {}
func (*FuncRef) node()            {}
func (*MonadicOpRef) node()       {}
func (*DyadicOpRef) node()        {}
func (*FunctionWrap) node()       {}
func (*LeftBound) node()          {}
func (*MonadicCall) node()        {}
func (*DyadicCall) node()         {}
func (*OperatorCall) node()       {}
func (*RightBound) node()         {}
func (*DyadicOperatorCall) node() {}
func (*Atop) node()               {}
func (*Fork) node()               {}
func (*Pending) node()            {}
