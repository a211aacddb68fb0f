package reparse

import (
	"literal-generator/lit"
)

// maxSnippet bounds the offending text copied into an error.
const maxSnippet = 32

// SyntaxError describes one parse failure inside the debug text.
type SyntaxError struct {
	Span lit.Span
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func (p *parser) fail(start, end int, msg string) *SyntaxError {
	end = min(max(end, start), len(p.src))
	start = min(start, end)

	text := p.src[start:end]
	if len(text) > maxSnippet {
		text = text[:maxSnippet] + "..."
	}

	return &SyntaxError{Span: lit.Span{Start: start, End: end}, Text: text, Msg: msg}
}

func wrap(se *SyntaxError) error {
	span := se.Span

	return &lit.Error{
		Kind: lit.ErrorMalformedDebugText,
		Span: &span,
		Text: se.Text,
		Err:  se,
	}
}
