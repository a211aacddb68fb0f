package reparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"literal-generator/lit"
	"literal-generator/primitive"
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// expect consumes c after optional whitespace.
func (p *parser) expect(c byte, what string) *SyntaxError {
	p.skipSpace()

	if p.peek() != c {
		if p.eof() {
			return p.fail(p.pos, p.pos, "unexpected end of text: expected "+what)
		}

		return p.fail(p.pos, p.pos+1, "expected "+what)
	}

	p.pos++

	return nil
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdent(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos]
}

// path scans ident ("::" ident)*.
func (p *parser) path() ([]string, *SyntaxError) {
	segs := []string{p.ident()}

	for strings.HasPrefix(p.src[p.pos:], "::") {
		p.pos += 2
		if p.eof() || !isIdentStart(p.src[p.pos]) {
			return nil, p.fail(p.pos, p.pos+1, "expected identifier after ::")
		}

		segs = append(segs, p.ident())
	}

	return segs, nil
}

// number scans -?digits(.digits)?(e[+-]?digits)?suffix?
func (p *parser) number() (lit.Node, *SyntaxError) {
	start := p.pos

	if p.peek() == '-' {
		p.pos++

		if strings.HasPrefix(p.src[p.pos:], primitive.TextInf) && !p.identAt(p.pos+len(primitive.TextInf)) {
			p.pos += len(primitive.TextInf)
			return lit.Untyped(primitive.KindUntypedFloat, primitive.TextNegInf), nil
		}
	}

	if p.eof() || !isDigit(p.peek()) {
		return nil, p.fail(start, p.pos+1, "expected digits")
	}

	p.digits()

	float := false
	if p.peek() == '.' && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1]) {
		float = true
		p.pos++
		p.digits()
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		exp := p.pos + 1
		if exp < len(p.src) && (p.src[exp] == '+' || p.src[exp] == '-') {
			exp++
		}

		if exp < len(p.src) && isDigit(p.src[exp]) {
			float = true
			p.pos = exp
			p.digits()
		}
	}

	text := p.src[start:p.pos]
	suffixStart := p.pos
	suffix := p.ident()

	if suffix == "" {
		if float {
			return lit.Untyped(primitive.KindUntypedFloat, text), nil
		}

		if !primitive.FitsKind(text, primitive.KindUntypedInt) {
			return nil, p.fail(start, p.pos, "integer literal out of range")
		}

		return lit.Untyped(primitive.KindUntypedInt, text), nil
	}

	kind := primitive.FromSuffix(suffix)
	switch {
	case kind == 0:
		return nil, p.fail(suffixStart, p.pos, "unknown numeric suffix")
	case kind.IsFloat():
		if !float {
			text += ".0"
		}
	case float:
		return nil, p.fail(start, p.pos, "float literal with integer suffix")
	case !primitive.FitsKind(text, kind):
		return nil, p.fail(start, p.pos, "literal out of range for "+suffix)
	}

	return &lit.Primitive{Kind: kind, Text: text}, nil
}

func (p *parser) digits() {
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) identAt(i int) bool {
	return i < len(p.src) && isIdent(p.src[i])
}

func (p *parser) str() (lit.Node, *SyntaxError) {
	start := p.pos
	p.pos++

	var sb strings.Builder

	for {
		if p.eof() {
			return nil, p.fail(start, p.pos, "unterminated string")
		}

		switch c := p.src[p.pos]; c {
		case '"':
			p.pos++
			return lit.String(sb.String()), nil
		case '\\':
			if err := p.escape(&sb); err != nil {
				return nil, err
			}
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) char() (lit.Node, *SyntaxError) {
	start := p.pos
	p.pos++

	var sb strings.Builder

	switch {
	case p.eof():
		return nil, p.fail(start, p.pos, "unterminated character literal")
	case p.src[p.pos] == '\\':
		if err := p.escape(&sb); err != nil {
			return nil, err
		}
	default:
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if r == utf8.RuneError && size <= 1 {
			return nil, p.fail(p.pos, p.pos+1, "invalid UTF-8 in character literal")
		}

		sb.WriteRune(r)
		p.pos += size
	}

	if p.peek() != '\'' {
		return nil, p.fail(start, p.pos+1, "unterminated character literal")
	}
	p.pos++

	r, _ := utf8.DecodeRuneInString(sb.String())

	return lit.Char(r), nil
}

// escape decodes one escape sequence starting at the backslash.
func (p *parser) escape(sb *strings.Builder) *SyntaxError {
	start := p.pos
	p.pos++

	if p.eof() {
		return p.fail(start, p.pos, "unterminated escape sequence")
	}

	c := p.src[p.pos]
	p.pos++

	switch c {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case '0':
		sb.WriteByte(0)
	case '\\', '"', '\'':
		sb.WriteByte(c)
	case 'x':
		if p.pos+2 > len(p.src) || !isHex(p.src[p.pos]) || !isHex(p.src[p.pos+1]) {
			return p.fail(start, p.pos+2, "invalid \\x escape")
		}

		v, _ := strconv.ParseUint(p.src[p.pos:p.pos+2], 16, 8)
		if v > 0x7f {
			return p.fail(start, p.pos+2, "\\x escape out of range")
		}

		sb.WriteByte(byte(v))
		p.pos += 2
	case 'u':
		if p.peek() != '{' {
			return p.fail(start, p.pos+1, "invalid \\u escape")
		}

		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 2 || end > 7 {
			return p.fail(start, p.pos+1, "invalid \\u escape")
		}

		hex := p.src[p.pos+1 : p.pos+end]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return p.fail(start, p.pos+end+1, "invalid unicode escape")
		}

		sb.WriteRune(rune(v))
		p.pos += end + 1
	default:
		return p.fail(start, p.pos, "unknown escape sequence")
	}

	return nil
}
