// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse groups the tokens of a line into the items
// from which package tree builds an expression.
package parse // import "github.com/tacit-lang/tacit/parse"

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/scan"
	"github.com/tacit-lang/tacit/tree"
	"github.com/tacit-lang/tacit/value"
)

// Parser stores the state for the tacit parser.
type Parser struct {
	scanner  *scan.Scanner
	tokens   []scan.Token    // Points to tokenBuf.
	tokenBuf [100]scan.Token // Reusable.
	fileName string
	lineNum  int
	offset   int
	conf     *config.Config
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, fileName string, scanner *scan.Scanner) *Parser {
	return &Parser{
		scanner:  scanner,
		fileName: fileName,
		conf:     conf,
	}
}

// Printf formats the args and writes them to the configured output writer.
func (p *Parser) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.conf.Output(), format, args...)
}

// Println prints the args and writes them to the configured output writer.
func (p *Parser) Println(args ...interface{}) {
	fmt.Fprintln(p.conf.Output(), args...)
}

// Loc returns the current input location in the form name:line: ,
// or the empty string for standard input.
func (p *Parser) Loc() string {
	if p.fileName == "" || p.fileName == "<stdin>" {
		return ""
	}
	return fmt.Sprintf("%s:%d: ", p.fileName, p.lineNum)
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
		p.lineNum = tok.Line // This gives us the line number before the newline.
		p.offset = tok.Offset
	}
	if tok.Type == scan.Error {
		p.errorf("%s", tok)
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if len(p.tokens) == 0 {
		return scan.Token{Type: scan.EOF}
	}
	return p.tokens[0]
}

// errorf discards the rest of the line and reports a syntax error.
func (p *Parser) errorf(format string, args ...interface{}) {
	p.tokens = p.tokenBuf[:0]
	panic(value.Errorf(value.SyntaxError, format, args...))
}

// Line reads a line of input and returns the items it holds.
// A nil returned slice means there was nothing to evaluate.
// The boolean is false at EOF.
//
// Line
//
//	) special command '\n'
//	items '\n'
//
// Errors are reported by panicking with a value.Error.
func (p *Parser) Line() ([]tree.Item, bool) {
	if !p.readTokensToNewline() {
		return nil, false
	}
	tok := p.peek()
	switch tok.Type {
	case scan.EOF:
		return nil, true
	case scan.RightParen:
		p.special()
		return nil, true
	}
	items := p.items(0)
	if p.conf.Debug("items") {
		p.Println(tree.Items(items))
	}
	return items, true
}

// readTokensToNewline reads the next line of input.
// The boolean is false at EOF.
// We read all tokens before parsing for easy error recovery
// if an error occurs mid-line.
func (p *Parser) readTokensToNewline() bool {
	p.tokens = p.tokenBuf[:0]
	for {
		tok := p.scanner.Next()
		switch tok.Type {
		case scan.Error:
			p.errorf("%s", tok.Text)
		case scan.Newline:
			return true
		case scan.EOF:
			return len(p.tokens) > 0
		}
		p.tokens = append(p.tokens, tok)
		p.lineNum = tok.Line
		p.offset = tok.Offset
	}
}

// items:
//
//	item...
//
// item:
//
//	number
//	function
//	operator
//	'(' items ')'
func (p *Parser) items(depth int) []tree.Item {
	var items []tree.Item
	for {
		tok := p.next()
		switch tok.Type {
		case scan.EOF:
			if depth > 0 {
				p.errorf("unmatched (")
			}
			return items
		case scan.RightParen:
			if depth == 0 {
				p.errorf("unmatched )")
			}
			return items
		case scan.LeftParen:
			items = append(items, tree.Group(p.items(depth+1)))
		case scan.Number:
			items = append(items, p.number(tok.Text))
		case scan.Function:
			fn, ok := value.LookupPrimitive(tok.Glyph())
			if !ok {
				p.errorf("unknown function %s", tok.Text)
			}
			items = append(items, tree.Func(fn))
		case scan.Operator:
			op, ok := value.LookupOperator(tok.Text)
			if !ok {
				p.errorf("unknown operator %s", tok.Text)
			}
			if op.Dyadic() {
				items = append(items, tree.DyadicOp(op))
			} else {
				items = append(items, tree.MonadicOp(op))
			}
		case scan.Identifier:
			p.errorf("names are not supported: %s", tok.Text)
		default:
			p.errorf("unexpected %s", tok)
		}
	}
}

// number converts the text of a number token. A leading high minus
// or underscore negates it; a decimal point makes it a float.
func (p *Parser) number(text string) tree.Item {
	s := text
	if t, ok := strings.CutPrefix(s, "¯"); ok {
		s = "-" + t
	} else if t, ok := strings.CutPrefix(s, "_"); ok {
		s = "-" + t
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			p.errorf("bad number %s: %v", text, err)
		}
		return tree.Float(f)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.errorf("bad number %s: %v", text, err)
	}
	return tree.Int(i)
}
