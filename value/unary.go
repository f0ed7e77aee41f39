// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Unary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

// unaryPervade returns the unaryFn that applies op to every scalar of its argument.
func unaryPervade(op *unaryOp) unaryFn {
	return func(v Array) Array {
		return Pervade(v, func(s Scalar) Scalar {
			return op.eval(s).(Scalar)
		})
	}
}

var (
	conjugate, negate, signum, reciprocal *unaryOp
	unaryOps                              map[Primitive]*unaryOp
)

func init() {
	conjugate = &unaryOp{
		name: "+",
		fn: [numType]unaryFn{
			intType:   func(v Array) Array { return v },
			floatType: func(v Array) Array { return v },
		},
	}

	negate = &unaryOp{
		name: "-",
		fn: [numType]unaryFn{
			intType: func(v Array) Array {
				return -v.(Int)
			},
			floatType: func(v Array) Array {
				return -v.(Float)
			},
		},
	}

	// Signum of zero is 1: only negative numbers map to ¯1.
	signum = &unaryOp{
		name: "×",
		fn: [numType]unaryFn{
			intType: func(v Array) Array {
				if v.(Int) < 0 {
					return Int(-1)
				}
				return Int(1)
			},
			floatType: func(v Array) Array {
				if v.(Float) < 0 {
					return Int(-1)
				}
				return Int(1)
			},
		},
	}

	reciprocal = &unaryOp{
		name: "÷",
		fn: [numType]unaryFn{
			intType: func(v Array) Array {
				i := v.(Int)
				if i == 0 {
					panic(Errorf(DomainError, "division by zero"))
				}
				return roundWhole(1 / float64(i))
			},
			floatType: func(v Array) Array {
				f := v.(Float)
				if f == 0 {
					panic(Errorf(DomainError, "division by zero"))
				}
				return roundWhole(1 / float64(f))
			},
		},
	}

	for _, op := range []*unaryOp{conjugate, negate, signum, reciprocal} {
		op.fn[nestedType] = unaryPervade(op)
		op.fn[vectorType] = unaryPervade(op)
	}

	unaryOps = map[Primitive]*unaryOp{
		Plus:   conjugate,
		Minus:  negate,
		Times:  signum,
		Divide: reciprocal,
	}
}
