package pulsim

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/pulsim/internal/def"
	"github.com/pkg/errors"
)

// Parse reads a network definition, one module per line, and builds the
// graph. For example:
//
//	broadcaster -> a, b, c
//	%a -> b, c
//	&b -> c, d
//
// Structural errors (unknown type prefix, missing arrow, bad destination
// list, duplicate definitions) are reported with line context and no graph is
// returned: construction is never partially applied.
//
func Parse(r io.Reader) (*Graph, error) {
	var defs []Def
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		d, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		defs = append(defs, d)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read network definition")
	}
	g, err := New(defs)
	return g, errors.Wrap(err, "build network")
}

// ParseString is a convenience wrapper around Parse.
//
func ParseString(s string) (*Graph, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(s string) (Def, error) {
	l := def.New(s)
	d := Def{Kind: Broadcast}

	i := l.Lex()
	switch i.Type {
	case def.Percent:
		d.Kind = FlipFlop
		i = l.Lex()
	case def.Amp:
		d.Kind = Conjunction
		i = l.Lex()
	}
	if i.Type != def.Ident {
		return d, parseError(s, i.Pos, "expected module name")
	}
	d.Name = i.Value
	if d.Kind == Broadcast && d.Name != Entry {
		return d, parseError(s, i.Pos, "module "+d.Name+" has no type prefix")
	}
	if i = l.Lex(); i.Type != def.Arrow {
		return d, parseError(s, i.Pos, `expected "->"`)
	}
	for {
		i = l.Lex()
		if i.Type != def.Ident {
			return d, parseError(s, i.Pos, "expected destination name")
		}
		d.Dests = append(d.Dests, i.Value)
		switch i = l.Lex(); i.Type {
		case def.EOF:
			return d, nil
		case def.Comma:
		default:
			return d, parseError(s, i.Pos, "expected comma or end of line")
		}
	}
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
