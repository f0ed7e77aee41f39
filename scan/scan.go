// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits tacit source text into tokens.
package scan // import "github.com/tacit-lang/tacit/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/value"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type   Type   // The type of this item.
	Line   int    // The line number on which this token appears
	Offset int    // The byte offset of the token in its line
	Text   string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so closed channel delivers EOF
	Error             // error occurred; value is text of error
	Newline
	// Interesting things
	Function   // primitive function glyph, or a backtick alias for one
	Identifier // alphanumeric word; only meaningful in special commands
	LeftParen  // '('
	Number     // simple number
	Operator   // primitive operator glyph
	RightParen // ')'
	String     // quoted string (includes quotes)
	numType
)

var typeNames = [numType]string{
	EOF:        "EOF",
	Error:      "Error",
	Newline:    "Newline",
	Function:   "Function",
	Identifier: "Identifier",
	LeftParen:  "LeftParen",
	Number:     "Number",
	Operator:   "Operator",
	RightParen: "RightParen",
	String:     "String",
}

func (t Type) String() string {
	if 0 <= t && t < numType {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// aliases spell glyphs that are awkward to type.
var aliases = map[string]string{
	"`-": "×",
	"`=": "÷",
}

// Glyph returns the primitive glyph the token spells,
// resolving backtick aliases.
func (i Token) Glyph() string {
	if g, ok := aliases[i.Text]; ok {
		return g
	}
	return i.Text
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	r         io.ByteReader
	done      bool
	name      string  // the name of the input; used only for error reports
	buf       []byte  // I/O buffer, re-used.
	input     string  // the line of text being scanned.
	lastRune  rune    // most recent return from next()
	lastWidth int     // size of that rune
	readOK    bool    // allow reading of a new line of input
	line      int     // line number in input
	pos       int     // current position in the input
	start     int     // start position of this item
	token     Token
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
// It strips carriage returns to make subsequent processing simpler.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	// Reset to beginning of input buffer if there is nothing pending.
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start = 0
		l.pos = 0
	} else {
		l.input += string(l.buf)
	}
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		if !l.readOK { // Token did not end before newline.
			l.errorf("incomplete token")
			return '\n', 1
		}
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	if l.pos == l.start {
		l.errorf("internal error: backup at start of input")
	}
	if l.pos > l.start {
		l.pos -= l.lastWidth
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	if t == Newline {
		l.line++
	}
	text := l.input[l.start:l.pos]
	tok := Token{t, l.line, l.start, text}
	if l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%s:%d: emit %s\n", l.name, l.line, tok)
	}
	l.token = tok
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, l.start, fmt.Sprintf(format, args...)}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// New creates and returns a new scanner.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	l := &Scanner{
		r:    r,
		name: name,
		line: 1,
		conf: conf,
	}
	return l
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.readOK = true
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.line, l.pos, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof || r == '\n' {
			break
		}
	}
	if len(l.input) > 0 {
		l.pos = len(l.input)
		l.start = l.pos - 1
		// Emitting newline also advances l.line.
		return l.emit(Newline)
	}
	return lexAny
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case r == '⍝':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == '\'' || r == '"':
		l.backup() // So lexQuote can read the quote character.
		return lexQuote
	case r == '`':
		return lexAlias
	case r == '¯' || r == '_':
		if !isDigit(l.peek()) {
			return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
		}
		fallthrough
	case isDigit(r):
		l.backup()
		return lexNumber
	case r == '(':
		return l.emit(LeftParen)
	case r == ')':
		return l.emit(RightParen)
	case isPrimitive(r):
		return l.emit(Function)
	case isOperator(r):
		return l.emit(Operator)
	case unicode.IsLetter(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexIdentifier scans an alphanumeric.
func lexIdentifier(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// lexAlias scans a backtick alias. The backtick has been consumed.
func lexAlias(l *Scanner) stateFn {
	l.next()
	if _, ok := aliases[l.input[l.start:l.pos]]; !ok {
		return l.errorf("unknown alias %s", l.input[l.start:l.pos])
	}
	return l.emit(Function)
}

// lexNumber scans a number: an optional high minus (or underscore),
// digits, and an optional fraction. Exponents are not accepted.
func lexNumber(l *Scanner) stateFn {
	l.accept("¯_")
	l.acceptRun(decimal)
	if l.accept(".") {
		if !isDigit(l.peek()) {
			return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
		}
		l.acceptRun(decimal)
	}
	if r := l.peek(); r == '.' || isAlphaNumeric(r) || r == '¯' {
		l.next()
		return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

const decimal = "0123456789"

// lexQuote scans a quoted string.
// The next character is the quote.
func lexQuote(l *Scanner) stateFn {
	quote := l.next()
	for {
		switch l.next() {
		case '\\':
			if r := l.next(); r != eof && r != '\n' {
				break
			}
			fallthrough
		case eof, '\n':
			return l.errorf("unterminated quoted string")
		case quote:
			return l.emit(String)
		}
	}
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isPrimitive reports whether r is the glyph of a primitive function.
func isPrimitive(r rune) bool {
	_, ok := value.LookupPrimitive(string(r))
	return ok
}

// isOperator reports whether r is the glyph of a primitive operator.
func isOperator(r rune) bool {
	_, ok := value.LookupOperator(string(r))
	return ok
}
