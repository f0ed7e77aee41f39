// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "fmt"

// ErrorKind classifies an Error.
type ErrorKind int

const (
	SyntaxError   ErrorKind = iota // no binding between adjacent items, or a stray operator
	TypeError                      // a function where an array is needed, or vice versa
	ShapeError                     // rank or length mismatch
	DomainError                    // argument outside a function's domain, such as division by zero
	NonceError                     // reserved primitive or a case not yet implemented
	InternalError                  // the tree builder or evaluator broke an invariant
)

var kindNames = [...]string{
	SyntaxError:   "SYNTAX ERROR",
	TypeError:     "TYPE ERROR",
	ShapeError:    "SHAPE ERROR",
	DomainError:   "DOMAIN ERROR",
	NonceError:    "NONCE ERROR",
	InternalError: "INTERNAL ERROR",
}

func (k ErrorKind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the type of all evaluation errors. Code below the line boundary
// reports an Error by panicking with it; Recover turns it back into an error.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (err Error) Error() string {
	return err.Kind.String() + ": " + err.Msg
}

func Errorf(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Recover, deferred, stores a panicking Error in *errp.
// Any other panic continues.
func Recover(errp *error) {
	err := recover()
	if err == nil {
		return
	}
	if err, ok := err.(Error); ok {
		*errp = err
		return
	}
	panic(err)
}
