// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value // import "github.com/tacit-lang/tacit/value"

import "github.com/tacit-lang/tacit/config"

// Value is the result of evaluating a line: an Array or a Function.
type Value interface {
	String() string

	// Sprint returns the display form of the value under the configuration.
	Sprint(*config.Config) string
}

// Array is a rank 0 (Scalar) or rank 1 (Vector) array.
type Array interface {
	Value
	Rank() int
	Shape() []int
}

// Scalar is a rank 0 array: an Int, a Float, or a Nested array.
type Scalar interface {
	Array
	isScalar()
}

// Function is a function value. Apply with a nil alpha is a monadic call.
// Errors are reported by panicking with an Error.
type Function interface {
	Value
	Apply(alpha, omega Array) Array
}

// defaultConf is used by String methods.
var defaultConf config.Config
