// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"

	"github.com/tacit-lang/tacit/config"
)

// Primitive is a built-in function.
type Primitive int

const (
	Plus Primitive = iota
	Minus
	Times
	Divide
	LeftTack
	RightTack
	Comma
	Epsilon // Reserved.
	numPrimitive
)

var primitiveGlyph = [numPrimitive]string{
	Plus:      "+",
	Minus:     "-",
	Times:     "×",
	Divide:    "÷",
	LeftTack:  "⊣",
	RightTack: "⊢",
	Comma:     ",",
	Epsilon:   "∊",
}

// LookupPrimitive returns the primitive function spelled by glyph.
func LookupPrimitive(glyph string) (Primitive, bool) {
	for p, g := range primitiveGlyph {
		if g == glyph {
			return Primitive(p), true
		}
	}
	return 0, false
}

func (p Primitive) String() string {
	if 0 <= p && p < numPrimitive {
		return primitiveGlyph[p]
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

func (p Primitive) Sprint(*config.Config) string {
	return p.String()
}

// Apply applies p to omega, and to alpha as well if alpha is not nil.
func (p Primitive) Apply(alpha, omega Array) Array {
	switch p {
	case LeftTack:
		if alpha == nil {
			return omega
		}
		return alpha
	case RightTack:
		return omega
	case Comma:
		if alpha == nil {
			return Ravel(omega)
		}
		return Catenate(alpha, omega)
	}
	if alpha == nil {
		if op, ok := unaryOps[p]; ok {
			return op.eval(omega)
		}
	} else if op, ok := binaryOps[p]; ok {
		return op.eval(alpha, omega)
	}
	panic(Errorf(NonceError, "function %s not implemented", p))
}

// Atop is the composition F G: G is applied to the arguments,
// then F monadically to the result.
type Atop struct {
	F, G Function
}

func (a Atop) String() string {
	return a.Sprint(&defaultConf)
}

func (a Atop) Sprint(conf *config.Config) string {
	return fmt.Sprintf("(%s %s)", a.F.Sprint(conf), a.G.Sprint(conf))
}

func (a Atop) Apply(alpha, omega Array) Array {
	return a.F.Apply(nil, a.G.Apply(alpha, omega))
}

// Fork is the train F G H: F and H are applied to the arguments
// and G combines their results.
type Fork struct {
	F, G, H Function
}

func (f Fork) String() string {
	return f.Sprint(&defaultConf)
}

func (f Fork) Sprint(conf *config.Config) string {
	return fmt.Sprintf("(%s %s %s)", f.F.Sprint(conf), f.G.Sprint(conf), f.H.Sprint(conf))
}

func (f Fork) Apply(alpha, omega Array) Array {
	right := f.H.Apply(alpha, omega)
	left := f.F.Apply(alpha, omega)
	return f.G.Apply(left, right)
}

// Operator is a built-in operator. No operator is evaluated yet;
// they take part in binding only.
type Operator int

const (
	Commute Operator = iota // Monadic.
	AtopOp                  // Dyadic.
	numOperator
)

var operatorGlyph = [numOperator]string{
	Commute: "⍨",
	AtopOp:  "⍤",
}

// LookupOperator returns the primitive operator spelled by glyph.
func LookupOperator(glyph string) (Operator, bool) {
	for o, g := range operatorGlyph {
		if g == glyph {
			return Operator(o), true
		}
	}
	return 0, false
}

// Dyadic reports whether o takes two operands.
func (o Operator) Dyadic() bool {
	return o == AtopOp
}

func (o Operator) String() string {
	if 0 <= o && o < numOperator {
		return operatorGlyph[o]
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}
