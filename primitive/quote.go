package primitive

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// QuoteStyle selects the escape notation for characters that must be escaped.
type QuoteStyle int

const (
	QuoteRust QuoteStyle = iota // \u{7f}, \0
	QuoteGo                     // \x7f, \x00
)

// byteOrderMark is rejected by the Go scanner anywhere but at the start of a file.
const byteOrderMark = '\ufeff'

// NeedsEscape reports whether the byte must be escaped inside a quoted literal:
// backslash, the quote character and control characters.
func NeedsEscape(b byte, quote byte) bool {
	return b == '\\' || b == quote || b < 0x20 || b == 0x7f
}

// Quote returns s as a double quoted literal. Only backslash, double quote and
// control characters are escaped; every other byte passes through unchanged.
// In QuoteGo style invalid UTF-8 bytes are written as \x escapes, as Go source
// must be valid UTF-8, and a byte order mark is written as \ufeff.
func Quote(s string, style QuoteStyle) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := 0; i < len(s); {
		b := s[i]

		if NeedsEscape(b, '"') {
			writeEscape(&sb, rune(b), style)
			i++
			continue
		}

		if style == QuoteGo && b >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			switch {
			case r == utf8.RuneError && size == 1:
				fmt.Fprintf(&sb, `\x%02x`, b)
			case r == byteOrderMark:
				sb.WriteString(`\ufeff`)
			default:
				sb.WriteString(s[i : i+size])
			}

			i += size

			continue
		}

		sb.WriteByte(b)
		i++
	}

	sb.WriteByte('"')

	return sb.String()
}

// QuoteChar returns r as a single quoted character literal.
func QuoteChar(r rune, style QuoteStyle) string {
	var sb strings.Builder

	sb.WriteByte('\'')

	switch {
	case r < utf8.RuneSelf && NeedsEscape(byte(r), '\''):
		writeEscape(&sb, r, style)
	case r == byteOrderMark && style == QuoteGo:
		sb.WriteString(`\ufeff`)
	default:
		sb.WriteRune(r)
	}

	sb.WriteByte('\'')

	return sb.String()
}

func writeEscape(sb *strings.Builder, r rune, style QuoteStyle) {
	switch r {
	case '\\':
		sb.WriteString(`\\`)
	case '"':
		sb.WriteString(`\"`)
	case '\'':
		sb.WriteString(`\'`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case 0:
		if style == QuoteRust {
			sb.WriteString(`\0`)
		} else {
			sb.WriteString(`\x00`)
		}
	default:
		if style == QuoteRust {
			fmt.Fprintf(sb, `\u{%x}`, r)
		} else {
			fmt.Fprintf(sb, `\x%02x`, r)
		}
	}
}
