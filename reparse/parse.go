package reparse

import (
	"fmt"
	"strings"
	"unicode"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/primitive"
)

type parser struct {
	src      string
	pos      int
	maxDepth int
}

// Parse converts debug text into a literal tree.
func Parse(text string) (lit.Node, error) {
	return ParseDepth(text, options.DefaultMaxDepth)
}

// ParseDepth is Parse with an explicit nesting limit.
func ParseDepth(text string, maxDepth int) (lit.Node, error) {
	if maxDepth <= 0 {
		maxDepth = options.DefaultMaxDepth
	}

	p := &parser{src: text, maxDepth: maxDepth}

	n, se := p.value(0)
	if se != nil {
		return nil, wrap(se)
	}

	p.skipSpace()
	if !p.eof() {
		return nil, wrap(p.fail(p.pos, len(p.src), "unexpected trailing text"))
	}

	return n, nil
}

func (p *parser) value(depth int) (lit.Node, *SyntaxError) {
	if depth > p.maxDepth {
		return nil, p.fail(p.pos, p.pos+1, fmt.Sprintf("nesting depth exceeds %d", p.maxDepth))
	}

	p.skipSpace()

	if p.eof() {
		return nil, p.fail(p.pos, p.pos, "unexpected end of text")
	}

	switch c := p.peek(); {
	case c == '"':
		return p.str()
	case c == '\'':
		return p.char()
	case c == '[':
		elems, err := p.list('[', ']', depth)
		if err != nil {
			return nil, err
		}
		return lit.Array(elems...), nil
	case c == '(':
		return p.tuple(depth)
	case c == '{':
		return p.mapping(depth)
	case c == '&':
		p.pos++
		inner, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		return lit.Wrap(lit.WrapRef, inner), nil
	case c == '-' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.named(depth)
	case c == ')' || c == ']' || c == '}':
		return nil, p.fail(p.pos, p.pos+1, "unbalanced closing delimiter")
	default:
		return nil, p.fail(p.pos, p.pos+1, "unexpected character")
	}
}

// list parses open value ("," value)* ","? close.
func (p *parser) list(open, close byte, depth int) ([]lit.Node, *SyntaxError) {
	elems, _, err := p.items(open, close, depth)

	return elems, err
}

// items is list that also reports whether any comma was seen.
func (p *parser) items(open, close byte, depth int) ([]lit.Node, bool, *SyntaxError) {
	start := p.pos
	p.pos++ // open

	var (
		elems []lit.Node
		comma bool
	)

	for {
		p.skipSpace()

		switch {
		case p.eof():
			return nil, comma, p.fail(start, p.pos, fmt.Sprintf("unbalanced delimiter: missing %q", close))
		case p.peek() == close:
			p.pos++
			return elems, comma, nil
		}

		elem, err := p.value(depth + 1)
		if err != nil {
			return nil, comma, err
		}
		elems = append(elems, elem)

		if err := p.separator(start, close); err != nil {
			return nil, comma, err
		}

		if p.peek() == ',' {
			comma = true
			p.pos++
		}
	}
}

// separator checks that a list element is followed by a comma or close.
func (p *parser) separator(start int, close byte) *SyntaxError {
	p.skipSpace()

	switch c := p.peek(); {
	case p.eof():
		return p.fail(start, p.pos, fmt.Sprintf("unbalanced delimiter: missing %q", close))
	case c == ',' || c == close:
		return nil
	default:
		return p.fail(p.pos, p.pos+1, fmt.Sprintf("expected ',' or %q", close))
	}
}

// tuple parses (), (a,), (a, b) and the grouping form (a).
func (p *parser) tuple(depth int) (lit.Node, *SyntaxError) {
	elems, comma, err := p.items('(', ')', depth)
	if err != nil {
		return nil, err
	}

	if len(elems) == 1 && !comma {
		return elems[0], nil
	}

	return lit.Tuple(elems...), nil
}

// mapping parses {key: value, ...}.
func (p *parser) mapping(depth int) (lit.Node, *SyntaxError) {
	start := p.pos
	p.pos++

	m := &lit.Mapping{}

	for {
		p.skipSpace()

		switch {
		case p.eof():
			return nil, p.fail(start, p.pos, "unbalanced delimiter: missing '}'")
		case p.peek() == '}':
			p.pos++
			return m, nil
		}

		key, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}

		if err := p.expect(':', "':' after map key"); err != nil {
			return nil, err
		}

		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}

		m.Entries = append(m.Entries, lit.Entry{Key: key, Value: val})

		if err := p.separator(start, '}'); err != nil {
			return nil, err
		}

		if p.peek() == ',' {
			p.pos++
		}
	}
}

// fields parses { name: value, ... }.
func (p *parser) fields(depth int) ([]lit.Field, *SyntaxError) {
	start := p.pos
	p.pos++

	var fields []lit.Field

	for {
		p.skipSpace()

		switch {
		case p.eof():
			return nil, p.fail(start, p.pos, "unbalanced delimiter: missing '}'")
		case p.peek() == '}':
			p.pos++
			return fields, nil
		case !isIdentStart(p.peek()):
			return nil, p.fail(p.pos, p.pos+1, "expected field name")
		}

		name := p.ident()

		if err := p.expect(':', "':' after field name"); err != nil {
			return nil, err
		}

		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}

		fields = append(fields, lit.Field{Name: name, Value: val})

		if err := p.separator(start, '}'); err != nil {
			return nil, err
		}

		if p.peek() == ',' {
			p.pos++
		}
	}
}

// named parses everything that starts with an identifier: keywords, unit
// variants, keyed literals, positional variants, constructor calls and vec!.
func (p *parser) named(depth int) (lit.Node, *SyntaxError) {
	start := p.pos

	segs, err := p.path()
	if err != nil {
		return nil, err
	}

	if len(segs) == 1 && segs[0] == "vec" && p.peek() == '!' {
		p.pos++
		p.skipSpace()

		if p.peek() != '[' {
			return nil, p.fail(start, p.pos+1, "expected '[' after vec!")
		}

		elems, err := p.list('[', ']', depth)
		if err != nil {
			return nil, err
		}

		return lit.Seq(lit.SeqList, elems...), nil
	}

	end := p.pos
	p.skipSpace()

	switch p.peek() {
	case '{':
		fields, err := p.fields(depth)
		if err != nil {
			return nil, err
		}

		if len(segs) == 1 {
			return lit.Struct(segs[0], fields...), nil
		}

		typ, tag := splitPath(segs)

		return lit.NamedVariant(typ, tag, fields...), nil
	case '(':
		args, err := p.list('(', ')', depth)
		if err != nil {
			return nil, err
		}

		return call(segs, args), nil
	}

	// Unit forms never swallow the whitespace that follows them.
	p.pos = end

	if n := keyword(segs); n != nil {
		return n, nil
	}

	typ, tag := splitPath(segs)

	return lit.Unit(typ, tag), nil
}

// call classifies Path(args...).
func call(segs []string, args []lit.Node) lit.Node {
	typ, tag := splitPath(segs)

	if len(args) == 1 {
		switch typ + "::" + tag {
		case "UnevalCow::Borrowed", "UnevalCow::Owned", "Cow::Owned":
			// The debug form of an owned wrapper references its payload.
			inner := args[0]
			if w, ok := inner.(*lit.Wrapped); ok && w.Wrapper == lit.WrapRef {
				inner = w.Inner
			}

			return describe.Duality(lit.Root(), "", false, func() lit.Node { return inner })
		case "Cow::Borrowed":
			return &lit.Unsupported{Reason: describe.ReasonBorrowed}
		case "Box::new":
			return lit.Wrap(lit.WrapBox, args[0])
		}

		if typ != "" && isLower(tag) {
			return &lit.Wrapped{Wrapper: lit.WrapCall, Ctor: strings.Join(segs, "::"), Inner: args[0]}
		}
	}

	return lit.TupleVariant(typ, tag, args...)
}

// keyword maps bare identifiers and float constants with a fixed meaning.
func keyword(segs []string) lit.Node {
	if len(segs) == 1 {
		switch segs[0] {
		case "true":
			return lit.Bool(true)
		case "false":
			return lit.Bool(false)
		case "None":
			return &lit.Nil{}
		case primitive.TextNaN, primitive.TextInf:
			return lit.Untyped(primitive.KindUntypedFloat, segs[0])
		}

		return nil
	}

	if len(segs) != 2 {
		return nil
	}

	kind := primitive.FromSuffix(segs[0])
	if !kind.IsFloat() {
		return nil
	}

	switch segs[1] {
	case "NAN":
		return &lit.Primitive{Kind: kind, Text: primitive.TextNaN}
	case "INFINITY":
		return &lit.Primitive{Kind: kind, Text: primitive.TextInf}
	case "NEG_INFINITY":
		return &lit.Primitive{Kind: kind, Text: primitive.TextNegInf}
	}

	return nil
}

// splitPath splits a::b::C into the type "a::b" and the tag "C".
func splitPath(segs []string) (typ, tag string) {
	last := len(segs) - 1

	return strings.Join(segs[:last], "::"), segs[last]
}

func isLower(s string) bool {
	return s != "" && unicode.IsLower(rune(s[0]))
}
