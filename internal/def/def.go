// Copyright 2024 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package def implements the lexer for the network definition language.
//
// One module per line:
//
//	broadcaster -> a, b, c
//	%a -> b, c
//	&b -> c, d
//
// where '%' declares a flip-flop and '&' a conjunction.
//
package def

import "unicode/utf8"

// Type is the type of a lexed item.
type Type int

// Item types.
//
const (
	EOF Type = iota
	Ident
	Arrow // "->"
	Comma
	Percent // '%', flip-flop prefix
	Amp     // '&', conjunction prefix
	Raw     // anything else, a single unexpected rune
)

// An Item is a single lexeme: its type, its byte position in the input and
// its text value.
//
type Item struct {
	Type  Type
	Pos   int
	Value string
}

// A Lexer splits a module definition line into items. The zero value is not
// usable; call New.
//
type Lexer struct {
	input string
	pos   int
}

// New returns a new Lexer for the given input line.
//
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex returns the next item in the input. Once the input is exhausted, Lex
// only returns EOF items.
//
func (l *Lexer) Lex() Item {
	for l.pos < len(l.input) {
		r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
		if r != ' ' && r != '\t' {
			break
		}
		l.pos += sz
	}
	start := l.pos
	if l.pos >= len(l.input) {
		return Item{Type: EOF, Pos: start, Value: "end of line"}
	}
	r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += sz
	switch {
	case r == '%':
		return Item{Type: Percent, Pos: start, Value: "%"}
	case r == '&':
		return Item{Type: Amp, Pos: start, Value: "&"}
	case r == ',':
		return Item{Type: Comma, Pos: start, Value: ","}
	case r == '-':
		if l.pos < len(l.input) && l.input[l.pos] == '>' {
			l.pos++
			return Item{Type: Arrow, Pos: start, Value: "->"}
		}
	case isIdent(r):
		for l.pos < len(l.input) {
			r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
			if !isIdent(r) {
				break
			}
			l.pos += sz
		}
		return Item{Type: Ident, Pos: start, Value: l.input[start:l.pos]}
	}
	return Item{Type: Raw, Pos: start, Value: l.input[start:l.pos]}
}

func isIdent(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}
