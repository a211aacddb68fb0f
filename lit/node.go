package lit

import (
	"literal-generator/primitive"
)

// Node is a sealed interface representing a literal expression.
// Only the types declared in this file implement it.
type Node interface {
	litNode()
}

// SeqKind selects the literal form of a Sequence.
type SeqKind int

const (
	SeqArray SeqKind = iota // fixed size array
	SeqList                 // growable collection
	SeqTuple                // positional tuple
)

// PayloadKind is the payload shape of a Variant, fixed by its tag.
type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadTuple
	PayloadNamed
)

// WrapperKind selects the constructor form of a Wrapped node.
type WrapperKind int

const (
	WrapCow  WrapperKind = iota // owned side of an owned/borrowed duality wrapper
	WrapBox                     // owning pointer
	WrapRef                     // plain reference to the inner literal
	WrapCall                    // custom constructor, see Wrapped.Ctor
)

// Primitive is a scalar literal: integer, float, bool or char.
// Text holds the canonical literal text, see package primitive.
type Primitive struct {
	Kind primitive.KindEnum
	Text string
	// Type is an optional named type, e.g. "celsius.Degrees".
	Type string
}

// Str is a string literal. Text is opaque and never reinterpreted.
type Str struct {
	Text string
	Type string
}

type Sequence struct {
	Kind  SeqKind
	Type  string
	Elems []Node
	// Dynamic marks interface typed elements.
	Dynamic bool
}

type Field struct {
	Name    string
	Value   Node
	Dynamic bool
}

// Keyed is a struct-like literal. Field order is preserved as captured.
type Keyed struct {
	Type   string
	Fields []Field
}

type Variant struct {
	Type    string
	Tag     string
	Payload PayloadKind
	Elems   []Node
	Fields  []Field
}

type Wrapped struct {
	Wrapper WrapperKind
	Ctor    string
	Type    string
	Inner   Node
}

type Entry struct {
	Key   Node
	Value Node
}

// Mapping is a map literal. Builders keep Entries sorted by key so output is
// deterministic.
type Mapping struct {
	Type    string
	Entries []Entry
	Dynamic bool
}

// Nil is an absent value: nil pointer, nil slice or map, or an empty option.
type Nil struct {
	Type string
	// Collection marks a nil slice or map. Languages without a null
	// collection write it as an empty one.
	Collection bool
}

// Unsupported marks a subtree that has no literal form. A tree containing it
// must never reach a renderer.
type Unsupported struct {
	Reason string
	Path   string
}

func (*Primitive) litNode()   {}
func (*Str) litNode()         {}
func (*Sequence) litNode()    {}
func (*Keyed) litNode()       {}
func (*Variant) litNode()     {}
func (*Wrapped) litNode()     {}
func (*Mapping) litNode()     {}
func (*Nil) litNode()         {}
func (*Unsupported) litNode() {}

// Int creates a signed integer primitive of the given kind.
func Int(kind primitive.KindEnum, v int64) *Primitive {
	return &Primitive{Kind: kind, Text: primitive.FormatInt(v)}
}

// Uint creates an unsigned integer primitive of the given kind.
func Uint(kind primitive.KindEnum, v uint64) *Primitive {
	return &Primitive{Kind: kind, Text: primitive.FormatUint(v)}
}

// Float creates a float primitive. The text is the exact round-trip form for
// the kind's bit size.
func Float(kind primitive.KindEnum, v float64) *Primitive {
	bits := 64
	if kind == primitive.KindFloat32 {
		bits = 32
	}

	return &Primitive{Kind: kind, Text: primitive.FormatFloat(v, bits)}
}

func Bool(v bool) *Primitive {
	if v {
		return &Primitive{Kind: primitive.KindBool, Text: "true"}
	}

	return &Primitive{Kind: primitive.KindBool, Text: "false"}
}

// Char creates a character primitive. Text holds the character itself.
func Char(r rune) *Primitive {
	return &Primitive{Kind: primitive.KindChar, Text: string(r)}
}

// Untyped creates a numeric primitive with no type information.
func Untyped(kind primitive.KindEnum, text string) *Primitive {
	return &Primitive{Kind: kind, Text: text}
}

func String(s string) *Str {
	return &Str{Text: s}
}

func Seq(kind SeqKind, elems ...Node) *Sequence {
	return &Sequence{Kind: kind, Elems: elems}
}

func Array(elems ...Node) *Sequence {
	return Seq(SeqArray, elems...)
}

func Tuple(elems ...Node) *Sequence {
	return Seq(SeqTuple, elems...)
}

// F is a shorthand for Field.
// Example: Struct("Point", F("x", Int(primitive.KindInt32, 1)))
func F(name string, value Node) Field {
	return Field{Name: name, Value: value}
}

func Struct(typeName string, fields ...Field) *Keyed {
	return &Keyed{Type: typeName, Fields: fields}
}

func Unit(typeName, tag string) *Variant {
	return &Variant{Type: typeName, Tag: tag, Payload: PayloadNone}
}

func TupleVariant(typeName, tag string, elems ...Node) *Variant {
	return &Variant{Type: typeName, Tag: tag, Payload: PayloadTuple, Elems: elems}
}

func NamedVariant(typeName, tag string, fields ...Field) *Variant {
	return &Variant{Type: typeName, Tag: tag, Payload: PayloadNamed, Fields: fields}
}

func Wrap(kind WrapperKind, inner Node) *Wrapped {
	return &Wrapped{Wrapper: kind, Inner: inner}
}

func Poison(reason string, path Path) *Unsupported {
	return &Unsupported{Reason: reason, Path: path.String()}
}
