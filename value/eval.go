// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

type valueType int

const (
	intType valueType = iota
	floatType
	nestedType
	vectorType
	numType
)

var typeName = [...]string{"int", "float", "nested", "vector"}

func (t valueType) String() string {
	return typeName[t]
}

func whichType(v Array) valueType {
	switch v.(type) {
	case Int:
		return intType
	case Float:
		return floatType
	case Nested:
		return nestedType
	case Vector:
		return vectorType
	}
	panic(Errorf(InternalError, "which type %T", v))
}

// toType converts v up to the numeric type t. Nested and vector
// operands are left alone; their ops descend into them.
func toType(v Array, t valueType) Array {
	if i, ok := v.(Int); ok && t == floatType {
		return Float(i)
	}
	return v
}

type unaryFn func(Array) Array

type unaryOp struct {
	name string
	fn   [numType]unaryFn
}

func (op *unaryOp) eval(v Array) Array {
	which := whichType(v)
	fn := op.fn[which]
	if fn == nil {
		panic(Errorf(DomainError, "monadic %s not implemented on type %s", op.name, which))
	}
	return fn(v)
}

type binaryFn func(Array, Array) Array

type binaryOp struct {
	name      string
	whichType func(a, b valueType) valueType
	fn        [numType]binaryFn
}

func (op *binaryOp) eval(u, v Array) Array {
	which := op.whichType(whichType(u), whichType(v))
	fn := op.fn[which]
	if fn == nil {
		panic(Errorf(DomainError, "dyadic %s not implemented on type %s", op.name, which))
	}
	return fn(toType(u, which), toType(v, which))
}

// scalar applies op to two scalars. The result is a scalar, because
// pervasion is shape-preserving.
func (op *binaryOp) scalar(u, v Scalar) Scalar {
	return op.eval(u, v).(Scalar)
}
