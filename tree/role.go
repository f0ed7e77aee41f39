// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/tacit-lang/tacit/value"
)

// Role is the binding role of a node: what it can combine with,
// and how strongly. Roles exist only while a tree is being built.
type Role int

const (
	RoleValue Role = iota
	RoleFunction  // includes derived functions and trains
	RoleHybrid    // reserved: no node has this role yet
	RoleLeftBound // function waiting for its right argument
	RoleMonadicOp // includes a dyadic operator with its right operand bound
	RoleDyadicOp
	RoleJot       // reserved
	RoleDot       // reserved
	RoleReference // reserved
	RoleIndex     // reserved
	numRole
)

var roleNames = [numRole]string{
	RoleValue:     "value",
	RoleFunction:  "function",
	RoleHybrid:    "hybrid",
	RoleLeftBound: "left-bound function",
	RoleMonadicOp: "monadic operator",
	RoleDyadicOp:  "dyadic operator",
	RoleJot:       "jot",
	RoleDot:       "dot",
	RoleReference: "reference",
	RoleIndex:     "index",
}

func (r Role) String() string {
	if 0 <= r && r < numRole {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RoleOf returns the binding role of n, which depends only on its kind.
// A Pending node has no role; asking for one is an internal error.
func RoleOf(n Node) Role {
	switch n.(type) {
	case *Literal, *ArrayLiteral, *MonadicCall, *DyadicCall:
		return RoleValue
	case *FuncRef, *FunctionWrap, *OperatorCall, *DyadicOperatorCall, *Atop, *Fork:
		return RoleFunction
	case *LeftBound:
		return RoleLeftBound
	case *MonadicOpRef, *RightBound:
		return RoleMonadicOp
	case *DyadicOpRef:
		return RoleDyadicOp
	}
	panic(value.Errorf(value.InternalError, "no role for %T", n))
}
