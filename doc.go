// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Tacit is an interpreter for the expression core of an APL-like language.
It reads a line of glyphs, groups it into a tree by binding strength, and
evaluates the tree. It is a plaything and a work in progress.

Values are integers (3, ¯2) and decimals (0.25). A leading ¯ or _ negates a
number. Numbers written next to each other form a vector; parentheses make
a nested vector: 1 (2 3) 4 has three items, the second a vector.

A function with a value on its left is called dyadically; otherwise it is
called monadically. Adjacent elements bind by role, and every neighbouring
pair must be able to bind: once 2 × has bound in 1 + 2 × 3, the + sits next to
a function still waiting for its right argument, which is a SYNTAX ERROR.
Chains of calls are written with parentheses: 1 + (2 × 3) is 7.
The same applies to - 1 + 2, written - (1 + 2). Functions may be typed with a backtick alias: `- is ×
and `= is ÷.

	Name         Glyph  Monadic       Dyadic
	plus         +      conjugate     add
	minus        -      negate        subtract
	times        ×      signum        multiply
	divide       ÷      reciprocal    divide
	left tack    ⊣      same          left argument
	right tack   ⊢      same          right argument
	comma        ,      ravel         catenate
	epsilon      ∊      reserved      reserved

Arithmetic on a scalar and a vector applies the scalar to each item.
Division by zero is a DOMAIN ERROR.

Two or three functions in a row with nothing to apply them to form a train.

	(f g) x      is  f (g x)
	x (f g) y    is  f (x g y)
	(f g h) x    is  (f x) g (h x)
	x (f g h) y  is  (x f y) g (x h y)

Longer trains group from the right: (f g h i) is (f (g h i)).

The operators ⍨ (monadic) and ⍤ (dyadic) take part in grouping. A derived
function must be parenthesized before it is applied, as in (+ ⍨) 5 or
(+ (⍤ -)) 5, and applying it is a NONCE ERROR.

The ⍝ glyph starts a comment that runs to the end of the line.

Errors are reported with a kind and the location:

	<stdin>:1: SYNTAX ERROR: monadic operator ⍨ cannot be followed by value 1

Usage:

	tacit [options] [file ...]

With no files, tacit reads standard input, using an editing line reader
with history when the input is a terminal. The -e flag evaluates one
expression and exits.

Settings come, in increasing precedence, from a YAML file named by -config
or $TACIT_CONFIG, from the environment variables TACIT_PROMPT,
TACIT_FORMAT, TACIT_DEBUG and TACIT_HISTORY, and from the flags.

Special commands

Tacit accepts a number of special commands, introduced by a right paren
at the beginning of the line. Most report the current value if a new value
is not specified.

	) debug name 0|1
		Toggle or set the named debugging flag. With no argument,
		lists the settings. The flags are
			items   print the items of each line
			panic   do not recover from errors
			reduce  print each step of the grouping
			tokens  print each token
			tree    print the tree before evaluating it
			types   print the role, type and value of each node
	) format ""
		Set the fmt format for printing floating-point values.
	) help
		Print a summary. ) help word prints only the lines mentioning word.
	) prompt ""
		Set the interactive prompt.

*/
package main
