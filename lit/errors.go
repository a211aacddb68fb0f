package lit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnrepresentable    = errors.New("value cannot be represented as a literal")
	ErrMalformedDebugText = errors.New("malformed debug text")
	ErrInternal           = errors.New("internal invariant violation")
)

// ErrorKind classifies serialization failures.
type ErrorKind int

const (
	ErrorUnrepresentable ErrorKind = iota + 1
	ErrorMalformedDebugText
	ErrorInternal
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorUnrepresentable:
		return "unrepresentable value"
	case ErrorMalformedDebugText:
		return "malformed debug text"
	case ErrorInternal:
		return "internal invariant violation"
	default:
		return "unknown"
	}
}

// Span is a byte range [Start, End) inside a debug text.
type Span struct {
	Start, End int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Error is the typed failure returned by every serialization entry point.
type Error struct {
	Kind ErrorKind
	// Path is set for unrepresentable values.
	Path string
	// Span and Text are set for malformed debug text.
	Span *Span
	Text string
	// Reason is the human-readable description.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.String())

	if e.Path != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Path)
	}

	if e.Span != nil {
		sb.WriteString(" at ")
		sb.WriteString(e.Span.String())

		if e.Text != "" {
			fmt.Fprintf(&sb, " (%q)", e.Text)
		}
	}

	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnrepresentable:
		return e.Kind == ErrorUnrepresentable
	case ErrMalformedDebugText:
		return e.Kind == ErrorMalformedDebugText
	case ErrInternal:
		return e.Kind == ErrorInternal
	default:
		return false
	}
}

// Unrepresentable creates an ErrorUnrepresentable error for the given path.
func Unrepresentable(path, reason string) *Error {
	return &Error{Kind: ErrorUnrepresentable, Path: path, Reason: reason}
}

// Malformed creates an ErrorMalformedDebugText error for the given span.
func Malformed(span Span, text, reason string) *Error {
	return &Error{Kind: ErrorMalformedDebugText, Span: &span, Text: text, Reason: reason}
}

// Internal creates an ErrorInternal error wrapping err.
func Internal(reason string, err error) *Error {
	return &Error{Kind: ErrorInternal, Reason: reason, Err: err}
}
