package describe

import (
	"reflect"
)

// Option is an optional value: either Some or None. It renders as the variant
// Option::Some(v) / Option::None, and in Go as describe.Some[T]{v} /
// describe.None[T]{}.
type Option[T any] interface {
	Structural
	// Value returns the held value and whether it is present.
	Value() (T, bool)
}

// Some is the present side of Option.
type Some[T any] struct {
	V T
}

// None is the absent side of Option.
type None[T any] struct{}

func (s Some[T]) Value() (T, bool) {
	return s.V, true
}

func (None[T]) Value() (T, bool) {
	var zero T

	return zero, false
}

func (s Some[T]) LiteralShape() Shape {
	return TupleVariant(optionType[T](), "Some", s.V)
}

func (None[T]) LiteralShape() Shape {
	return Unit(optionType[T](), "None")
}

func optionType[T any]() string {
	return TypeName(reflect.TypeFor[Option[T]]())
}
