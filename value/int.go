// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strconv"

	"github.com/tacit-lang/tacit/config"
)

// Int is not only the simplest representation, it provides the operands that mix
// types upward. That is, Int+Float is done by converting the Int to a Float.
type Int int64

func (i Int) String() string {
	return i.Sprint(&defaultConf)
}

// Sprint prints negative numbers with APL's high minus.
func (i Int) Sprint(*config.Config) string {
	if i < 0 {
		return "¯" + strconv.FormatUint(uint64(-i), 10)
	}
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) Rank() int { return 0 }

func (i Int) Shape() []int { return nil }

func (i Int) isScalar() {}

// roundWhole returns x as an Int if it is a whole number that fits,
// otherwise as a Float: exact results take the simplest representation.
func roundWhole(x float64) Scalar {
	if x == math.Trunc(x) && -(1<<63) <= x && x < 1<<63 {
		return Int(x)
	}
	return Float(x)
}
