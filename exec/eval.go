// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates binding trees built by package tree.
package exec // import "github.com/tacit-lang/tacit/exec"

import (
	"github.com/tacit-lang/tacit/tree"
	"github.com/tacit-lang/tacit/value"
)

// An Evaluator computes the values of trees.
type Evaluator struct {
	// Trace, if not nil, is called after each node is evaluated,
	// with the depth of the node in the tree.
	Trace func(depth int, n tree.Node, v value.Value)

	depth int
}

// Evaluate computes the value of n with the zero Evaluator.
func Evaluate(n tree.Node) (value.Value, error) {
	var e Evaluator
	return e.Evaluate(n)
}

// Evaluate computes the value of n: an array for an expression,
// a function for a bare function or train.
func (e *Evaluator) Evaluate(n tree.Node) (v value.Value, err error) {
	defer value.Recover(&err)
	e.depth = 0
	return e.eval(n), nil
}

func (e *Evaluator) eval(n tree.Node) value.Value {
	e.depth++
	v := e.node(n)
	e.depth--
	if e.Trace != nil {
		e.Trace(e.depth, n, v)
	}
	return v
}

func (e *Evaluator) node(n tree.Node) value.Value {
	switch n := n.(type) {
	case *tree.Literal:
		return n.Value
	case *tree.ArrayLiteral:
		v := make(value.Vector, len(n.Elems))
		for i, elem := range n.Elems {
			v[i] = e.array(elem, "array element")
		}
		return v
	case *tree.FuncRef:
		return n.Fn
	case *tree.FunctionWrap:
		return e.function(n.Fn)
	case *tree.MonadicCall:
		fn := e.function(n.Fn)
		return fn.Apply(nil, e.array(n.Right, "right argument"))
	case *tree.DyadicCall:
		fn := e.function(n.Fn)
		// Right to left.
		right := e.array(n.Right, "right argument")
		left := e.array(n.Left, "left argument")
		return fn.Apply(left, right)
	case *tree.Atop:
		return value.Atop{F: e.function(n.F), G: e.function(n.G)}
	case *tree.Fork:
		return value.Fork{F: e.function(n.F), G: e.function(n.G), H: e.function(n.H)}
	case *tree.OperatorCall:
		panic(value.Errorf(value.NonceError, "operator %s not implemented", n.Op))
	case *tree.DyadicOperatorCall:
		panic(value.Errorf(value.NonceError, "operator %s not implemented", n.Op))
	case *tree.MonadicOpRef, *tree.DyadicOpRef, *tree.RightBound:
		panic(value.Errorf(value.SyntaxError, "operator %s has no operand", n))
	case *tree.LeftBound:
		panic(value.Errorf(value.SyntaxError, "function %s has no right argument", n.Fn))
	case *tree.Pending:
		panic(value.Errorf(value.InternalError, "unreduced sequence %s", n))
	}
	panic(value.Errorf(value.InternalError, "unknown node %T", n))
}

// array evaluates n, which must yield an array.
func (e *Evaluator) array(n tree.Node, what string) value.Array {
	v := e.eval(n)
	a, ok := v.(value.Array)
	if !ok {
		panic(value.Errorf(value.TypeError, "%s %s is a function, not an array", what, n))
	}
	return a
}

// function evaluates n, which must yield a function.
func (e *Evaluator) function(n tree.Node) value.Function {
	v := e.eval(n)
	fn, ok := v.(value.Function)
	if !ok {
		panic(value.Errorf(value.TypeError, "%s is an array, not a function", n))
	}
	return fn
}
