// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tacit-lang/tacit/value"
)

var (
	plus    = Func(value.Plus)
	minus   = Func(value.Minus)
	times   = Func(value.Times)
	divide  = Func(value.Divide)
	comma   = Func(value.Comma)
	right   = Func(value.RightTack)
	commute = MonadicOp(value.Commute)
	atop    = DyadicOp(value.AtopOp)
)

func group(items ...Item) Group { return Group(items) }

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  string
	}{
		{"literal", []Item{Int(-2)}, "¯2"},
		{"strand", []Item{Int(1), Int(2), Int(3)}, "<1 2 3>"},
		{"mixed strand", []Item{Int(1), Float(0.5)}, "<1 0.5>"},
		{"monadic", []Item{minus, Int(5)}, "(- 5)"},
		{"dyadic", []Item{Int(1), plus, Int(2)}, "(1 + 2)"},
		{"right argument group", []Item{Int(1), plus, group(Int(2), times, Int(3))}, "(1 + (2 × 3))"},
		{"monadic chain", []Item{minus, minus, Int(5)}, "(- (- 5))"},
		{"strand arguments", []Item{Int(1), Int(2), plus, Int(3), Int(4)}, "(<1 2> + <3 4>)"},
		{"monadic of group", []Item{divide, group(Int(1), plus, Int(2))}, "(÷ (1 + 2))"},
		{"parenthesized left", []Item{group(Int(1), plus, Int(2)), times, Int(3)}, "((1 + 2) × 3)"},
		{"paren array first", []Item{group(Int(1), Int(2)), Int(3)}, "<<1 2> 3>"},
		{"paren array middle", []Item{Int(1), group(Int(2), Int(3)), Int(4)}, "<1 <2 3> 4>"},
		{"paren scalar", []Item{group(Int(1)), Int(2)}, "<1 2>"},
		{"call in strand", []Item{Int(1), group(minus, Int(2))}, "<1 (- 2)>"},
		{"paren function", []Item{group(plus), Int(1)}, "({+} 1)"},
		{"paren wrapped once", []Item{group(group(plus)), Int(1)}, "({+} 1)"},
		{"commute", []Item{group(plus, commute), Int(3)}, "({(+ ⍨)} 3)"},
		{"commute dyadic", []Item{Int(2), group(minus, commute), Int(3)}, "(2 {(- ⍨)} 3)"},
		{"value operand", []Item{Int(1), commute}, "(1 ⍨)"},
		{"dyadic operator", []Item{group(plus, group(atop, minus)), Int(5)}, "({(+ ⍤ -)} 5)"},
		{"right operand only", []Item{atop, minus}, "(_ ⍤ -)"},
	}
	for _, test := range tests {
		n, err := Build(test.items)
		if err != nil {
			t.Errorf("%s: %s: %v", test.name, Items(test.items), err)
			continue
		}
		if got := n.String(); got != test.want {
			t.Errorf("%s: %s = %s, want %s", test.name, Items(test.items), got, test.want)
		}
	}
}

func TestTrains(t *testing.T) {
	tests := []struct {
		items []Item
		want  string
	}{
		{[]Item{group(minus, divide)}, "{[- ÷]}"},
		{[]Item{group(plus, times, minus)}, "{[+ × -]}"},
		{[]Item{group(plus, times, minus), Int(5)}, "({[+ × -]} 5)"},
		{[]Item{Int(6), group(plus, times, minus), Int(2)}, "(6 {[+ × -]} 2)"},
		// e f g h is e (f g h).
		{[]Item{group(comma, plus, times, minus)}, "{[, [+ × -]]}"},
		// d e f g h is d e (f g h).
		{[]Item{group(right, comma, plus, times, minus)}, "{[⊢ , [+ × -]]}"},
		// A parenthesized atop is not split by a function on its left.
		{[]Item{group(plus, group(times, minus))}, "{[+ {[× -]}]}"},
		// Derived functions take part in trains.
		{[]Item{group(minus, plus, commute)}, "{[- (+ ⍨)]}"},
	}
	for _, test := range tests {
		n, err := Build(test.items)
		if err != nil {
			t.Errorf("%s: %v", Items(test.items), err)
			continue
		}
		if got := n.String(); got != test.want {
			t.Errorf("%s = %s, want %s", Items(test.items), got, test.want)
		}
	}
}

func TestTieBreak(t *testing.T) {
	var at []int
	b := Builder{
		Trace: func(nodes []Node, i int) { at = append(at, i) },
	}
	n, err := b.Build([]Item{Int(1), Int(2), Int(3), Int(4)})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 1, 0}; !reflect.DeepEqual(at, want) {
		t.Errorf("contracted at %v, want %v", at, want)
	}
	a, ok := n.(*ArrayLiteral)
	if !ok || len(a.Elems) != 4 || a.Paren {
		t.Errorf("got %s, want one flat array of 4", n)
	}
	// 1 2 + 3 4: both strands bind at 6; the right one goes first.
	at = nil
	if _, err := b.Build([]Item{Int(1), Int(2), plus, Int(3), Int(4)}); err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 0, 0, 0}; !reflect.DeepEqual(at, want) {
		t.Errorf("contracted at %v, want %v", at, want)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		kind  value.ErrorKind
	}{
		{"empty", nil, value.SyntaxError},
		{"empty group", []Item{Int(1), group()}, value.SyntaxError},
		{"operator first", []Item{commute, Int(1)}, value.SyntaxError},
		{"two dyadic operators", []Item{atop, atop}, value.SyntaxError},
		{"dangling function", []Item{Int(1), plus, minus}, value.SyntaxError},
		{"error inside group", []Item{Int(1), plus, group(commute, Int(2))}, value.SyntaxError},
		// After 1 + 2 binds, - is next to a left-bound function.
		{"monadic before dyadic", []Item{minus, Int(1), plus, Int(2)}, value.SyntaxError},
		{"two dyadic calls", []Item{Int(1), plus, Int(2), times, Int(3)}, value.SyntaxError},
		{"function before dyadic operator", []Item{plus, atop, minus, Int(5)}, value.SyntaxError},
		{"derived function applied", []Item{plus, commute, Int(3)}, value.SyntaxError},
	}
	for _, test := range tests {
		n, err := Build(test.items)
		var e value.Error
		if !errors.As(err, &e) {
			t.Errorf("%s: got %v, %v; want %s", test.name, n, err, test.kind)
			continue
		}
		if e.Kind != test.kind {
			t.Errorf("%s: got %s, want %s", test.name, e, test.kind)
		}
	}
}

func TestUnboundPair(t *testing.T) {
	var steps []string
	b := Builder{
		Trace: func(nodes []Node, at int) { steps = append(steps, (&Pending{Nodes: nodes}).String()) },
	}
	n, err := b.Build([]Item{minus, Int(1), plus, Int(2)})
	if err == nil {
		t.Fatalf("built %s", n)
	}
	const want = "SYNTAX ERROR: function - cannot be followed by left-bound function (1 + _)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
	// Only 1 + binds before the failure.
	if len(steps) != 1 {
		t.Errorf("contractions %q, want 1", steps)
	}
}

func TestCombine(t *testing.T) {
	lit := func(i int) Node { return &Literal{Value: value.Int(i)} }
	arr := func(paren bool, elems ...Node) Node { return &ArrayLiteral{Elems: elems, Paren: paren} }
	tests := []struct {
		x, y Node
		want string
	}{
		{lit(1), lit(2), "<1 2>"},
		{arr(false, lit(1), lit(2)), arr(false, lit(3), lit(4)), "<1 2 3 4>"},
		{lit(1), arr(false, lit(2), lit(3)), "<1 2 3>"},
		{arr(true, lit(1), lit(2)), lit(3), "<<1 2> 3>"},
		{lit(1), arr(true, lit(2), lit(3)), "<1 <2 3>>"},
		{lit(1), &FuncRef{Fn: value.Plus}, "(1 + _)"},
		{&FuncRef{Fn: value.Minus}, lit(1), "(- 1)"},
		{&LeftBound{Arg: lit(1), Fn: &FuncRef{Fn: value.Plus}}, lit(2), "(1 + 2)"},
		{&DyadicOpRef{Op: value.AtopOp}, lit(2), "(_ ⍤ 2)"},
		{&FuncRef{Fn: value.Plus}, &FuncRef{Fn: value.Minus}, "[+ -]"},
	}
	for _, test := range tests {
		n, err := Combine(test.x, test.y)
		if err != nil {
			t.Errorf("Combine(%s, %s): %v", test.x, test.y, err)
			continue
		}
		if got := n.String(); got != test.want {
			t.Errorf("Combine(%s, %s) = %s, want %s", test.x, test.y, got, test.want)
		}
		if a, ok := n.(*ArrayLiteral); ok && a.Paren {
			t.Errorf("Combine(%s, %s) is parenthesized", test.x, test.y)
		}
	}

	errorTests := []struct {
		x, y Node
		kind value.ErrorKind
	}{
		{lit(1), &DyadicOpRef{Op: value.AtopOp}, value.SyntaxError},
		{&MonadicOpRef{Op: value.Commute}, lit(1), value.SyntaxError},
		{&Pending{}, lit(1), value.InternalError},
	}
	for _, test := range errorTests {
		_, err := Combine(test.x, test.y)
		var e value.Error
		if !errors.As(err, &e) || e.Kind != test.kind {
			t.Errorf("Combine(%s, %s): got %v, want %s", test.x, test.y, err, test.kind)
		}
	}
}

func TestRoleOf(t *testing.T) {
	lit := &Literal{Value: value.Int(1)}
	fn := &FuncRef{Fn: value.Plus}
	tests := []struct {
		n    Node
		want Role
	}{
		{lit, RoleValue},
		{&ArrayLiteral{}, RoleValue},
		{&MonadicCall{Fn: fn, Right: lit}, RoleValue},
		{&DyadicCall{Left: lit, Fn: fn, Right: lit}, RoleValue},
		{fn, RoleFunction},
		{&FunctionWrap{Fn: fn}, RoleFunction},
		{&OperatorCall{Operand: fn, Op: &MonadicOpRef{}}, RoleFunction},
		{&DyadicOperatorCall{Left: fn, Op: &DyadicOpRef{}, Right: fn}, RoleFunction},
		{&Atop{F: fn, G: fn}, RoleFunction},
		{&Fork{F: fn, G: fn, H: fn}, RoleFunction},
		{&LeftBound{Arg: lit, Fn: fn}, RoleLeftBound},
		{&MonadicOpRef{}, RoleMonadicOp},
		{&RightBound{Op: &DyadicOpRef{}, Operand: fn}, RoleMonadicOp},
		{&DyadicOpRef{}, RoleDyadicOp},
	}
	for _, test := range tests {
		if got := RoleOf(test.n); got != test.want {
			t.Errorf("RoleOf(%T) = %s, want %s", test.n, got, test.want)
		}
	}
}

func TestStrength(t *testing.T) {
	tests := []struct {
		x, y Role
		want int
	}{
		{RoleValue, RoleValue, 6},
		{RoleValue, RoleFunction, 3},
		{RoleFunction, RoleValue, 2},
		{RoleFunction, RoleFunction, 1},
		{RoleLeftBound, RoleValue, 2},
		{RoleFunction, RoleMonadicOp, 4},
		{RoleDyadicOp, RoleFunction, 5},
		{RoleValue, RoleDot, 7},
		{RoleReference, RoleDyadicOp, 7},
		{RoleIndex, RoleHybrid, 3},
	}
	for _, test := range tests {
		got, err := Strength(test.x, test.y)
		if err != nil || got != test.want {
			t.Errorf("Strength(%s, %s) = %d, %v; want %d", test.x, test.y, got, err, test.want)
		}
	}
	for _, pair := range [][2]Role{{RoleFunction, RoleDyadicOp}, {RoleMonadicOp, RoleValue}, {RoleLeftBound, RoleLeftBound}} {
		if _, err := Strength(pair[0], pair[1]); err == nil {
			t.Errorf("Strength(%s, %s) succeeded", pair[0], pair[1])
		}
	}
}
