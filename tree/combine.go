// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/tacit-lang/tacit/value"

// Combine contracts the adjacent pair x y into a single node.
// The shape of the result is determined by the roles of x and y.
func Combine(x, y Node) (n Node, err error) {
	defer value.Recover(&err)
	return combine(x, y), nil
}

func combine(x, y Node) Node {
	rx, ry := RoleOf(x), RoleOf(y)
	switch rx {
	case RoleValue:
		switch ry {
		case RoleValue:
			return strand(x, y)
		case RoleFunction, RoleHybrid:
			return &LeftBound{Arg: x, Fn: y}
		case RoleMonadicOp:
			return applyOperator(x, y)
		}
	case RoleFunction, RoleHybrid:
		switch {
		case rx == RoleFunction && ry == RoleValue:
			return &MonadicCall{Fn: x, Right: y}
		case rx == RoleFunction && (ry == RoleFunction || ry == RoleHybrid):
			return train(x, y)
		case ry == RoleMonadicOp:
			return applyOperator(x, y)
		}
	case RoleLeftBound:
		if ry == RoleValue {
			lb, ok := x.(*LeftBound)
			if !ok {
				panic(value.Errorf(value.InternalError, "left-bound role for %T", x))
			}
			return &DyadicCall{Left: lb.Arg, Fn: lb.Fn, Right: y}
		}
	case RoleDyadicOp, RoleJot:
		switch ry {
		case RoleValue, RoleFunction, RoleHybrid:
			return &RightBound{Op: x, Operand: y}
		case RoleMonadicOp:
			if rx == RoleJot {
				return applyOperator(x, y)
			}
		}
	}
	panic(value.Errorf(value.SyntaxError, "cannot combine %s %s with %s %s", rx, x, ry, y))
}

// strand joins two values into an array literal. Unparenthesized
// arrays on either side are spliced in, so 1 2 3 is one flat array
// however it was contracted; a parenthesized array stays one element.
func strand(x, y Node) Node {
	var elems []Node
	for _, n := range []Node{x, y} {
		if a, ok := n.(*ArrayLiteral); ok && !a.Paren {
			elems = append(elems, a.Elems...)
		} else {
			elems = append(elems, n)
		}
	}
	return &ArrayLiteral{Elems: elems}
}

// applyOperator applies a monadic operator, or a dyadic operator whose
// right operand is already bound, to the operand x on its left.
func applyOperator(x, op Node) Node {
	switch op := op.(type) {
	case *MonadicOpRef:
		return &OperatorCall{Operand: x, Op: op}
	case *RightBound:
		return &DyadicOperatorCall{Left: x, Op: op.Op, Right: op.Operand}
	}
	panic(value.Errorf(value.InternalError, "monadic operator role for %T", op))
}

// train combines two adjacent functions: f g is an atop, and f followed
// by the atop g h is the fork f g h. Parenthesized trains arrive wrapped
// and are never split.
func train(f, g Node) Node {
	if atop, ok := g.(*Atop); ok {
		return &Fork{F: f, G: atop.F, H: atop.G}
	}
	return &Atop{F: f, G: g}
}
