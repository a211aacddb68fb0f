package describe

import (
	"literal-generator/lit"
)

// ShapeKind is the discriminant of a Shape.
type ShapeKind int

const (
	ShapeStruct ShapeKind = iota
	ShapeSequence
	ShapeVariant
	ShapeWrapper
	ShapeDuality
	ShapeNode
)

// Shape is the structural description of one value. Children are arbitrary
// values, each described recursively through the same protocol.
type Shape struct {
	Kind ShapeKind
	// Type is the type name. Go types may be given with their import path,
	// e.g. "example.com/geo.Point".
	Type string

	// Fields holds named children of structs and named variants.
	Fields []Field
	// Elems holds positional children of sequences, tuple variants and the
	// single inner value of wrappers.
	Elems []any

	Seq     lit.SeqKind
	Tag     string
	Payload lit.PayloadKind
	Wrapper lit.WrapperKind
	Ctor    string

	// Borrowed is set on a duality wrapper that holds a reference instead of
	// owned data.
	Borrowed bool

	// Node is a prebuilt literal for ShapeNode.
	Node lit.Node
}

// Field is a named child value.
type Field struct {
	Name  string
	Value any
}

// F is a shorthand for Field.
// Example: Struct("Point", F("x", 1), F("y", 2))
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

func Struct(typeName string, fields ...Field) Shape {
	return Shape{Kind: ShapeStruct, Type: typeName, Fields: fields}
}

func Array(elems ...any) Shape {
	return Shape{Kind: ShapeSequence, Seq: lit.SeqArray, Elems: elems}
}

// List describes a growable collection.
func List(typeName string, elems ...any) Shape {
	return Shape{Kind: ShapeSequence, Seq: lit.SeqList, Type: typeName, Elems: elems}
}

func Tuple(elems ...any) Shape {
	return Shape{Kind: ShapeSequence, Seq: lit.SeqTuple, Elems: elems}
}

func Unit(typeName, tag string) Shape {
	return Shape{Kind: ShapeVariant, Type: typeName, Tag: tag, Payload: lit.PayloadNone}
}

func TupleVariant(typeName, tag string, elems ...any) Shape {
	return Shape{Kind: ShapeVariant, Type: typeName, Tag: tag, Payload: lit.PayloadTuple, Elems: elems}
}

func NamedVariant(typeName, tag string, fields ...Field) Shape {
	return Shape{Kind: ShapeVariant, Type: typeName, Tag: tag, Payload: lit.PayloadNamed, Fields: fields}
}

// Wrap describes an owning wrapper around value. ctor is only used by
// lit.WrapCall wrappers.
func Wrap(kind lit.WrapperKind, ctor string, value any) Shape {
	return Shape{Kind: ShapeWrapper, Wrapper: kind, Ctor: ctor, Elems: []any{value}}
}

// Raw describes a value by a prebuilt literal.
func Raw(n lit.Node) Shape {
	return Shape{Kind: ShapeNode, Node: n}
}
