// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/tacit-lang/tacit/value"

// A Builder reduces item sequences to trees.
type Builder struct {
	// Trace, if not nil, is called before each contraction with the
	// working sequence and the index of the pair about to be combined.
	Trace func(nodes []Node, at int)
}

// Build reduces items to a single node with the zero Builder.
func Build(items []Item) (Node, error) {
	var b Builder
	return b.Build(items)
}

// Build reduces items to a single node. Groups are reduced first,
// innermost outward. Then, while more than one node remains, the adjacent
// pair with the greatest binding strength is combined; on ties the
// rightmost pair wins. Strengths are recomputed after every step
// because combining changes roles. A pair of neighbours with no binding
// strength fails the whole build.
func (b *Builder) Build(items []Item) (n Node, err error) {
	defer value.Recover(&err)
	return b.reduce(items), nil
}

func (b *Builder) reduce(items []Item) Node {
	if len(items) == 0 {
		panic(value.Errorf(value.SyntaxError, "empty expression"))
	}
	p := &Pending{Nodes: make([]Node, len(items))}
	for i, item := range items {
		if g, ok := item.(Group); ok {
			p.Nodes[i] = enclose(b.reduce(g))
		} else {
			p.Nodes[i] = resolve(item)
		}
	}
	for len(p.Nodes) > 1 {
		at := strongest(p.Nodes)
		if b.Trace != nil {
			b.Trace(p.Nodes, at)
		}
		p.Nodes[at] = combine(p.Nodes[at], p.Nodes[at+1])
		p.Nodes = append(p.Nodes[:at+1], p.Nodes[at+2:]...)
	}
	return p.Nodes[0]
}

// strongest returns the index of the left element of the adjacent pair
// that binds most strongly, preferring the rightmost among equals.
// Every adjacent pair must bind; the first that does not is a syntax error.
func strongest(nodes []Node) int {
	at, best := 0, 0
	for i := 0; i+1 < len(nodes); i++ {
		x, y := nodes[i], nodes[i+1]
		s, err := Strength(RoleOf(x), RoleOf(y))
		if err != nil {
			panic(value.Errorf(value.SyntaxError, "%s %s cannot be followed by %s %s", RoleOf(x), x, RoleOf(y), y))
		}
		if s >= best {
			at, best = i, s
		}
	}
	return at
}

// enclose marks the result of a parenthesized group. An array keeps
// its own identity inside an enclosing strand; a function is wrapped
// so that a train inside the parentheses is not split.
func enclose(n Node) Node {
	switch n := n.(type) {
	case *ArrayLiteral:
		n.Paren = true
		return n
	case *FunctionWrap:
		return n
	}
	if RoleOf(n) == RoleFunction {
		return &FunctionWrap{Fn: n}
	}
	return n
}
