package describe

import (
	"reflect"
)

// Cow is an owned/borrowed duality wrapper: it holds either a value it owns or
// a reference to a value owned elsewhere. Only the owned side has a literal
// form; a borrowed Cow fails serialization with an unrepresentable value error.
//
// In generated Go code an owned Cow is written as describe.Owned(v).
type Cow[T any] struct {
	owned T
	ref   *T
	isRef bool
}

// Owned returns a Cow that owns v.
func Owned[T any](v T) Cow[T] {
	return Cow[T]{owned: v}
}

// Borrowed returns a Cow referencing *p. The caller keeps ownership of *p.
func Borrowed[T any](p *T) Cow[T] {
	return Cow[T]{ref: p, isRef: true}
}

func (c Cow[T]) IsOwned() bool {
	return !c.isRef
}

func (c Cow[T]) IsBorrowed() bool {
	return c.isRef
}

// Get returns the held value. It panics on a borrowed nil reference.
func (c Cow[T]) Get() T {
	if c.isRef {
		return *c.ref
	}

	return c.owned
}

// IntoOwned returns a copy of the held value.
func (c Cow[T]) IntoOwned() T {
	return c.Get()
}

// ToMut converts a borrowed Cow into an owned one by copying the referenced
// value, then returns a pointer to the owned value.
func (c *Cow[T]) ToMut() *T {
	if c.isRef {
		c.owned = *c.ref
		c.ref = nil
		c.isRef = false
	}

	return &c.owned
}

// LiteralShape describes the Cow as a duality wrapper.
func (c Cow[T]) LiteralShape() Shape {
	s := Shape{
		Kind:     ShapeDuality,
		Type:     TypeName(reflect.TypeFor[Cow[T]]()),
		Borrowed: c.isRef,
	}

	if !c.isRef {
		s.Elems = []any{c.owned}
	}

	return s
}
