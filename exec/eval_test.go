// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/tree"
	"github.com/tacit-lang/tacit/value"
)

var (
	plus    = tree.Func(value.Plus)
	minus   = tree.Func(value.Minus)
	times   = tree.Func(value.Times)
	divide  = tree.Func(value.Divide)
	comma   = tree.Func(value.Comma)
	left    = tree.Func(value.LeftTack)
	right   = tree.Func(value.RightTack)
	epsilon = tree.Func(value.Epsilon)
	commute = tree.MonadicOp(value.Commute)
	atop    = tree.DyadicOp(value.AtopOp)
)

func group(items ...tree.Item) tree.Group { return tree.Group(items) }

func vec(xs ...int) value.Vector {
	v := make(value.Vector, len(xs))
	for i, x := range xs {
		v[i] = value.Int(x)
	}
	return v
}

func eval(items []tree.Item) (value.Value, error) {
	n, err := tree.Build(items)
	if err != nil {
		return nil, err
	}
	return Evaluate(n)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		items []tree.Item
		want  value.Value
	}{
		{[]tree.Item{tree.Int(1), plus, tree.Int(2)}, value.Int(3)},
		{[]tree.Item{tree.Int(1), divide, tree.Int(2)}, value.Float(0.5)},
		{[]tree.Item{tree.Int(4), divide, tree.Int(2)}, value.Int(2)},
		{[]tree.Item{divide, tree.Int(4)}, value.Float(0.25)},
		{[]tree.Item{divide, tree.Int(1)}, value.Int(1)},
		{[]tree.Item{tree.Int(1), tree.Int(2), tree.Int(3)}, vec(1, 2, 3)},
		{[]tree.Item{tree.Int(1), plus, tree.Int(2), tree.Int(3), tree.Int(4)}, vec(3, 4, 5)},
		{[]tree.Item{tree.Int(2), tree.Int(3), tree.Int(4), plus, tree.Int(1)}, vec(3, 4, 5)},
		{[]tree.Item{tree.Int(1), plus, group(tree.Int(2), times, tree.Int(3))}, value.Int(7)},
		{[]tree.Item{group(tree.Int(1), plus, tree.Int(2)), times, tree.Int(3)}, value.Int(9)},
		{[]tree.Item{tree.Int(1), tree.Int(2), comma, tree.Int(3), tree.Int(4)}, vec(1, 2, 3, 4)},
		{[]tree.Item{comma, tree.Int(5)}, vec(5)},
		{[]tree.Item{tree.Int(1), left, tree.Int(2)}, value.Int(1)},
		{[]tree.Item{tree.Int(1), right, tree.Int(2)}, value.Int(2)},
		{[]tree.Item{tree.Int(1), group(tree.Int(2), tree.Int(3))}, value.Vector{value.Int(1), vec(2, 3)}},
		{[]tree.Item{minus, tree.Float(1.5)}, value.Float(-1.5)},
		// Trains.
		{[]tree.Item{group(plus, times, minus), tree.Int(5)}, value.Int(-25)},
		{[]tree.Item{tree.Int(6), group(plus, times, minus), tree.Int(2)}, value.Int(32)},
		{[]tree.Item{tree.Int(2), group(minus, divide), tree.Int(8)}, value.Float(-0.25)},
		{[]tree.Item{group(minus, divide), tree.Int(4)}, value.Float(-0.25)},
		{[]tree.Item{group(plus), tree.Int(1)}, value.Int(1)},
	}
	for _, test := range tests {
		got, err := eval(test.items)
		if err != nil {
			t.Errorf("%s: %v", tree.Items(test.items), err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s = %#v, want %#v", tree.Items(test.items), got, test.want)
		}
	}
}

func TestEvaluateFunction(t *testing.T) {
	tests := []struct {
		items []tree.Item
		want  value.Value
	}{
		{[]tree.Item{plus}, value.Plus},
		{[]tree.Item{group(minus, divide)}, value.Atop{F: value.Minus, G: value.Divide}},
		{[]tree.Item{group(plus, times, minus)}, value.Fork{F: value.Plus, G: value.Times, H: value.Minus}},
	}
	for _, test := range tests {
		got, err := eval(test.items)
		if err != nil {
			t.Errorf("%s: %v", tree.Items(test.items), err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s = %#v, want %#v", tree.Items(test.items), got, test.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []tree.Item
		kind  value.ErrorKind
	}{
		{"commute", []tree.Item{group(plus, commute), tree.Int(3)}, value.NonceError},
		{"atop operator", []tree.Item{group(plus, group(atop, minus)), tree.Int(5)}, value.NonceError},
		{"unbound commute", []tree.Item{plus, commute, tree.Int(3)}, value.SyntaxError},
		{"two dyadic calls", []tree.Item{tree.Int(1), plus, tree.Int(2), times, tree.Int(3)}, value.SyntaxError},
		{"bare operator", []tree.Item{commute}, value.SyntaxError},
		{"right operand only", []tree.Item{atop, minus}, value.SyntaxError},
		{"no right argument", []tree.Item{tree.Int(1), plus}, value.SyntaxError},
		{"epsilon", []tree.Item{epsilon, tree.Int(1)}, value.NonceError},
		{"divide by zero", []tree.Item{tree.Int(1), divide, tree.Int(0)}, value.DomainError},
		{"vector vector", []tree.Item{tree.Int(1), tree.Int(2), plus, tree.Int(3), tree.Int(4)}, value.NonceError},
		{"length", []tree.Item{tree.Int(1), tree.Int(2), plus, tree.Int(3), tree.Int(4), tree.Int(5)}, value.ShapeError},
	}
	for _, test := range tests {
		v, err := eval(test.items)
		var e value.Error
		if !errors.As(err, &e) {
			t.Errorf("%s: got %v, %v; want %s", test.name, v, err, test.kind)
			continue
		}
		if e.Kind != test.kind {
			t.Errorf("%s: got %s, want %s", test.name, e, test.kind)
		}
	}
}

// Trees that Build never produces still evaluate to errors.
func TestEvaluateNodes(t *testing.T) {
	lit := &tree.Literal{Value: value.Int(1)}
	fn := &tree.FuncRef{Fn: value.Minus}
	tests := []struct {
		name string
		n    tree.Node
		kind value.ErrorKind
	}{
		{"function in strand", &tree.ArrayLiteral{Elems: []tree.Node{lit, fn}}, value.TypeError},
		{"function argument", &tree.MonadicCall{Fn: fn, Right: fn}, value.TypeError},
		{"function left argument", &tree.DyadicCall{Left: fn, Fn: fn, Right: lit}, value.TypeError},
		{"array applied", &tree.MonadicCall{Fn: lit, Right: lit}, value.TypeError},
		{"array in train", &tree.Atop{F: fn, G: lit}, value.TypeError},
		{"pending", &tree.Pending{Nodes: []tree.Node{lit, lit}}, value.InternalError},
	}
	for _, test := range tests {
		_, err := Evaluate(test.n)
		var e value.Error
		if !errors.As(err, &e) || e.Kind != test.kind {
			t.Errorf("%s: got %v, want %s", test.name, err, test.kind)
		}
	}
}

// The right argument is evaluated first.
func TestEvaluationOrder(t *testing.T) {
	n, err := tree.Build([]tree.Item{tree.Int(1), plus, tree.Int(2)})
	if err != nil {
		t.Fatal(err)
	}
	var order []string
	e := Evaluator{
		Trace: func(depth int, n tree.Node, v value.Value) {
			order = append(order, n.String())
		},
	}
	if _, err := e.Evaluate(n); err != nil {
		t.Fatal(err)
	}
	want := []string{"+", "2", "1", "(1 + 2)"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("evaluation order %q, want %q", order, want)
	}
}

func TestTypeTracer(t *testing.T) {
	n, err := tree.Build([]tree.Item{minus, tree.Int(5)})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	var conf config.Config
	e := Evaluator{Trace: TypeTracer(&buf, &conf)}
	if _, err := e.Evaluate(n); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"| - [function] value.Primitive -",
		"| 5 [value] value.Int 5",
		"(- 5) [value] value.Int ¯5",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("trace:\n%s\nwant:\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestTypeTracerLongValue(t *testing.T) {
	items := make([]tree.Item, 30)
	for i := range items {
		items[i] = tree.Int(-1)
	}
	n, err := tree.Build(items)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	var conf config.Config
	e := Evaluator{Trace: TypeTracer(&buf, &conf)}
	if _, err := e.Evaluate(n); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !utf8.ValidString(out) {
		t.Fatalf("trace is not valid UTF-8: %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	want := strings.Repeat("¯1 ", 16) + "¯1..."
	if !strings.HasSuffix(last, want) {
		t.Errorf("got %q, want suffix %q", last, want)
	}
}
