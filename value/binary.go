// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Binary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

// binaryArithType returns the maximum of the two types,
// so the smaller value is appropriately up-converted.
func binaryArithType(t1, t2 valueType) valueType {
	if t1 > t2 {
		return t1
	}
	return t2
}

// binaryNestedOp applies op between a simple scalar and a nested one,
// or two nested ones, by pervading into the nested side.
func binaryNestedOp(op *binaryOp) binaryFn {
	return func(u, v Array) Array {
		if n, ok := v.(Nested); ok {
			s := u.(Scalar)
			return Nested{Inner: Pervade(n.Inner, func(x Scalar) Scalar {
				return op.scalar(s, x)
			})}
		}
		n := u.(Nested)
		s := v.(Scalar)
		return Nested{Inner: Pervade(n.Inner, func(x Scalar) Scalar {
			return op.scalar(x, s)
		})}
	}
}

// binaryVectorOp implements scalar pervasion when at least one side is a vector:
// a scalar is extended across every element of the other side.
// Elementwise application between two vectors is not implemented.
func binaryVectorOp(op *binaryOp) binaryFn {
	return func(u, v Array) Array {
		if s, ok := u.(Scalar); ok {
			return Pervade(v, func(x Scalar) Scalar {
				return op.scalar(s, x)
			})
		}
		if s, ok := v.(Scalar); ok {
			return Pervade(u, func(x Scalar) Scalar {
				return op.scalar(x, s)
			})
		}
		a, b := u.(Vector), v.(Vector)
		if a.Len() != b.Len() {
			panic(Errorf(ShapeError, "length mismatch: %d %d", a.Len(), b.Len()))
		}
		panic(Errorf(NonceError, "dyadic %s between two vectors not implemented", op.name))
	}
}

var (
	add, sub, mul, quo *binaryOp
	binaryOps          map[Primitive]*binaryOp
)

func init() {
	add = &binaryOp{
		name:      "+",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(u, v Array) Array {
				return u.(Int) + v.(Int)
			},
			floatType: func(u, v Array) Array {
				return u.(Float) + v.(Float)
			},
		},
	}

	sub = &binaryOp{
		name:      "-",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(u, v Array) Array {
				return u.(Int) - v.(Int)
			},
			floatType: func(u, v Array) Array {
				return u.(Float) - v.(Float)
			},
		},
	}

	mul = &binaryOp{
		name:      "×",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(u, v Array) Array {
				return u.(Int) * v.(Int)
			},
			floatType: func(u, v Array) Array {
				return u.(Float) * v.(Float)
			},
		},
	}

	// An exact integer quotient stays an Int. Otherwise the division
	// is done in floating point.
	quo = &binaryOp{
		name:      "÷",
		whichType: binaryArithType,
		fn: [numType]binaryFn{
			intType: func(u, v Array) Array {
				i, j := u.(Int), v.(Int)
				if j == 0 {
					panic(Errorf(DomainError, "division by zero"))
				}
				if i%j == 0 {
					return i / j
				}
				return roundWhole(float64(i) / float64(j))
			},
			floatType: func(u, v Array) Array {
				if v.(Float) == 0 {
					panic(Errorf(DomainError, "division by zero"))
				}
				return u.(Float) / v.(Float)
			},
		},
	}

	for _, op := range []*binaryOp{add, sub, mul, quo} {
		op.fn[nestedType] = binaryNestedOp(op)
		op.fn[vectorType] = binaryVectorOp(op)
	}

	binaryOps = map[Primitive]*binaryOp{
		Plus:   add,
		Minus:  sub,
		Times:  mul,
		Divide: quo,
	}
}
