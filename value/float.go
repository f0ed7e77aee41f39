// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"

	"github.com/tacit-lang/tacit/config"
)

type Float float64

func (f Float) String() string {
	return f.Sprint(&defaultConf)
}

// Sprint formats f with the configured verb, using ¯ for the sign.
func (f Float) Sprint(conf *config.Config) string {
	x := float64(f)
	if x == 0 {
		x = 0 // No negative zero.
	}
	if math.Signbit(x) {
		return "¯" + fmt.Sprintf(conf.Format(), -x)
	}
	return fmt.Sprintf(conf.Format(), x)
}

func (f Float) Rank() int { return 0 }

func (f Float) Shape() []int { return nil }

func (f Float) isScalar() {}
