// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "strings"

// helpLines is the text printed by )help, one entry per line.
// Section headers start with "# ".
var helpLines = strings.Split(strings.TrimPrefix(`
# Functions
	Name         Glyph  Monadic       Dyadic
	plus         +      conjugate     add
	minus        -      negate        subtract
	times        ×  `+"`-"+`  signum        multiply
	divide       ÷  `+"`="+`  reciprocal    divide
	left tack    ⊣      same          left argument
	right tack   ⊢      same          right argument
	comma        ,      ravel         catenate
	epsilon      ∊      reserved      reserved
# Operators
	commute      ⍨      monadic operator; binds but does not evaluate yet
	atop         ⍤      dyadic operator; binds but does not evaluate yet
# Syntax
	Numbers are integers or decimals: 3 ¯2 0.25. A leading ¯ or _ negates.
	Juxtaposed numbers form a vector: 1 2 3. Parentheses group: (1 2) 3.
	Chains of calls need parentheses: 1 + (2 × 3) is 7; 1 + 2 × 3 is an error.
	Two or three functions in parentheses form a train:
		(f g) x is f (g x); x (f g) y is f (x g y).
		(f g h) x is (f x) g (h x); x (f g h) y is (x f y) g (x h y).
	⍝ starts a comment.
# Special commands
	) help
		Print this text. ) help word prints only the lines mentioning word.
	) debug name 0|1
		Toggle or set the named debugging flag. With no argument,
		lists the settings.
	) format ""
		Set the fmt format for printing floating-point values.
	) prompt ""
		Set the interactive prompt.
`, "\n"), "\n")

// help prints the help text, or only the lines that contain word.
func (p *Parser) help(word string) {
	word = strings.ToLower(word)
	found := false
	for _, line := range helpLines {
		if word == "" || strings.Contains(strings.ToLower(line), word) {
			p.Println(line)
			found = true
		}
	}
	if !found {
		p.Printf("no docs for %q\n", word)
	}
}
