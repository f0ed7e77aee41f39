// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/tacit-lang/tacit/value"

type rolePair struct {
	x, y Role
}

// strengths holds the binding strength of every pair of adjacent roles
// that can bind. Higher binds sooner. The rows for Hybrid, Jot, Dot,
// Reference and Index are reserved for indexing and composition syntax.
var strengths = map[rolePair]int{
	{RoleValue, RoleValue}:     6,
	{RoleValue, RoleFunction}:  3,
	{RoleValue, RoleHybrid}:    3,
	{RoleValue, RoleMonadicOp}: 4,
	{RoleValue, RoleDot}:       7,
	{RoleValue, RoleIndex}:     4,

	{RoleFunction, RoleValue}:     2,
	{RoleFunction, RoleFunction}:  1,
	{RoleFunction, RoleHybrid}:    4,
	{RoleFunction, RoleMonadicOp}: 4,
	{RoleFunction, RoleIndex}:     4,

	{RoleHybrid, RoleFunction}:  1,
	{RoleHybrid, RoleHybrid}:    4,
	{RoleHybrid, RoleMonadicOp}: 4,
	{RoleHybrid, RoleIndex}:     4,

	{RoleLeftBound, RoleValue}:    2,
	{RoleLeftBound, RoleFunction}: 1,

	{RoleMonadicOp, RoleHybrid}: 4,

	{RoleDyadicOp, RoleValue}:    5,
	{RoleDyadicOp, RoleFunction}: 5,
	{RoleDyadicOp, RoleHybrid}:   5,

	{RoleJot, RoleValue}:     5,
	{RoleJot, RoleFunction}:  5,
	{RoleJot, RoleHybrid}:    5,
	{RoleJot, RoleMonadicOp}: 4,

	{RoleDot, RoleValue}:    6,
	{RoleDot, RoleFunction}: 5,
	{RoleDot, RoleHybrid}:   5,
	{RoleDot, RoleDyadicOp}: 6,

	{RoleReference, RoleValue}:     7,
	{RoleReference, RoleFunction}:  7,
	{RoleReference, RoleHybrid}:    7,
	{RoleReference, RoleMonadicOp}: 7,
	{RoleReference, RoleDyadicOp}:  7,

	{RoleIndex, RoleValue}:    3,
	{RoleIndex, RoleFunction}: 3,
	{RoleIndex, RoleHybrid}:   3,
}

// Strength returns how strongly a node of role x binds to a node
// of role y on its right, from 1 (weakest) to 7.
// It returns an error if the pair does not bind at all.
func Strength(x, y Role) (int, error) {
	s, ok := strengths[rolePair{x, y}]
	if !ok {
		return 0, value.Errorf(value.SyntaxError, "no binding between %s and %s", x, y)
	}
	return s, nil
}
