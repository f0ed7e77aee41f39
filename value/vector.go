// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"

	"github.com/tacit-lang/tacit/config"
)

// Vector is a rank 1 array. Its elements may themselves be vectors.
type Vector []Array

func NewVector(elems ...Array) Vector {
	return Vector(elems)
}

func (v Vector) String() string {
	return v.Sprint(&defaultConf)
}

// Sprint separates elements by a space and parenthesizes nested vectors.
func (v Vector) Sprint(conf *config.Config) string {
	var b strings.Builder
	for i, elem := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		if _, ok := elem.(Vector); ok {
			b.WriteByte('(')
			b.WriteString(elem.Sprint(conf))
			b.WriteByte(')')
			continue
		}
		b.WriteString(elem.Sprint(conf))
	}
	return b.String()
}

func (v Vector) Rank() int { return 1 }

func (v Vector) Shape() []int { return []int{len(v)} }

func (v Vector) Len() int {
	return len(v)
}

// Nested is a scalar enclosing an array. Pervasion passes through it.
type Nested struct {
	Inner Array
}

func (n Nested) String() string {
	return n.Sprint(&defaultConf)
}

func (n Nested) Sprint(conf *config.Config) string {
	if _, ok := n.Inner.(Vector); ok {
		return "(" + n.Inner.Sprint(conf) + ")"
	}
	return n.Inner.Sprint(conf)
}

func (n Nested) Rank() int { return 0 }

func (n Nested) Shape() []int { return nil }

func (n Nested) isScalar() {}

// Pervade applies fn to every simple scalar of a, preserving its shape.
// fn never sees a Nested scalar; pervasion descends into it.
func Pervade(a Array, fn func(Scalar) Scalar) Array {
	switch a := a.(type) {
	case Nested:
		return Nested{Inner: Pervade(a.Inner, fn)}
	case Scalar:
		return fn(a)
	case Vector:
		n := make(Vector, len(a))
		for i := range a {
			n[i] = Pervade(a[i], fn)
		}
		return n
	}
	panic(Errorf(InternalError, "pervade of %T", a))
}

// elements returns a as a sequence: a scalar counts as one element.
func elements(a Array) []Array {
	if v, ok := a.(Vector); ok {
		return v
	}
	return []Array{a}
}

// Catenate joins the elements of a and b into one vector.
func Catenate(a, b Array) Vector {
	u, v := elements(a), elements(b)
	n := make(Vector, 0, len(u)+len(v))
	n = append(n, u...)
	return append(n, v...)
}

// Ravel returns a as a vector. A scalar becomes a one-element vector.
func Ravel(a Array) Vector {
	if v, ok := a.(Vector); ok {
		return v
	}
	return Vector{a}
}

// Pick returns the element of a at index, which must have one entry
// per axis of a. A scalar is its own only element.
func Pick(a Array, index []int) Array {
	if len(index) != a.Rank() {
		panic(Errorf(ShapeError, "rank error: %d indexes for rank %d", len(index), a.Rank()))
	}
	v, ok := a.(Vector)
	if !ok {
		return a
	}
	i := index[0]
	if i < 0 || len(v) <= i {
		panic(Errorf(ShapeError, "index error: %d out of range for length %d", i, len(v)))
	}
	return v[i]
}
