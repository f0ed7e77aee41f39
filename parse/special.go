// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"slices"
	"sort"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tacit-lang/tacit/config"
	"github.com/tacit-lang/tacit/scan"
)

// specialCommands lists the words accepted after a leading ).
var specialCommands = []string{"debug", "format", "help", "prompt"}

func (p *Parser) need(want ...scan.Type) scan.Token {
	tok := p.next()
	for _, w := range want {
		if tok.Type == w {
			return tok
		}
	}
	// Make the output look nice; usually there is only one item.
	if len(want) == 1 {
		p.errorf("expected %s, got %s", want[0], tok)
	}
	str := want[0].String()
	for _, s := range want[1:] {
		str += " or " + s.String()
	}
	p.errorf("expected %s; got %s", str, tok)
	panic("not reached")
}

// nextDecimalNumber returns the next number, which
// must be a non-negative integer.
func (p *Parser) nextDecimalNumber() int {
	tok := p.need(scan.Number)
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n < 0 {
		p.errorf("value must be a non-negative integer: %s", tok.Text)
	}
	return n
}

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

func (p *Parser) special() {
	p.need(scan.RightParen)
	conf := p.conf
Switch:
	switch text := p.need(scan.Identifier).Text; text {
	case "help":
		word := ""
		if p.peek().Type != scan.EOF {
			word = p.next().Text
		}
		p.help(word)
	case "debug":
		if p.peek().Type == scan.EOF {
			for _, f := range config.DebugFlags {
				p.Printf("%s\t%d\n", f, truth(conf.Debug(f)))
			}
			break Switch
		}
		name := p.need(scan.Identifier).Text
		if !slices.Contains(config.DebugFlags, name) {
			p.Println("no such debug flag:", name)
			break Switch
		}
		if p.peek().Type == scan.EOF {
			// Toggle the value
			conf.SetDebug(name, !conf.Debug(name))
			p.Println(truth(conf.Debug(name)))
		} else {
			number := p.nextDecimalNumber()
			if number > 1 {
				p.errorf("illegal value %d", number)
			}
			conf.SetDebug(name, number == 1)
		}
	case "format":
		if p.peek().Type == scan.EOF {
			p.Printf("%q\n", conf.Format())
			break Switch
		}
		conf.SetFormat(p.getString())
	case "prompt":
		if p.peek().Type == scan.EOF {
			p.Printf("%q\n", conf.Prompt())
			break Switch
		}
		conf.SetPrompt(p.getString())
	default:
		if s := suggest(text, specialCommands); s != "" {
			p.errorf(")%s: not recognized; did you mean )%s?", text, s)
		}
		p.errorf(")%s: not recognized", text)
	}
	p.need(scan.EOF)
}

// getString returns the value of the string that must be next in the input.
func (p *Parser) getString() string {
	text := p.need(scan.String).Text
	if text[0] == '\'' {
		return text[1 : len(text)-1]
	}
	str, err := strconv.Unquote(text)
	if err != nil {
		p.errorf("bad string %s: %v", text, err)
	}
	return str
}

// suggest returns the candidate closest to word, or the empty string
// if none is close. Abbreviations are preferred over misspellings.
func suggest(word string, candidates []string) string {
	ranks := fuzzy.RankFindFold(word, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, dist := "", 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(word, c); d < dist {
			best, dist = c, d
		}
	}
	return best
}
