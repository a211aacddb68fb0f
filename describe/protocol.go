package describe

import (
	"reflect"
)

// Structural is implemented by values that describe their own literal shape.
// Child values in the Shape are described recursively.
type Structural interface {
	LiteralShape() Shape
}

// DebugOnly is implemented by values that only expose a debug rendering written
// in the host debug notation:
//
//	TypeName { field: value, ... }
//	TypeName(value, ...)
//	[value, ...]
type DebugOnly interface {
	DebugLiteral() string
}

// Capability is the way a type exposes its shape.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityStructural
	CapabilityDebugOnly
)

// String returns a human-readable capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityStructural:
		return "structural"
	case CapabilityDebugOnly:
		return "debug-only"
	default:
		return "none"
	}
}

var (
	structuralType = reflect.TypeFor[Structural]()
	debugOnlyType  = reflect.TypeFor[DebugOnly]()
)

// Resolve returns the capability of t. Structural wins over DebugOnly when a
// type implements both. Types with no literal meaning (functions, channels,
// raw and unsafe pointers, complex numbers) resolve to CapabilityNone.
func Resolve(t reflect.Type) Capability {
	if t == nil {
		return CapabilityStructural // nil interface, rendered as an absent value
	}

	if t.Implements(structuralType) {
		return CapabilityStructural
	}

	if t.Implements(debugOnlyType) {
		return CapabilityDebugOnly
	}

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128, reflect.Invalid:
		return CapabilityNone
	default:
		return CapabilityStructural
	}
}

// Implements reports whether the type describes itself through Structural or
// DebugOnly rather than through reflection.
func Implements(t reflect.Type) bool {
	return t != nil && (t.Implements(structuralType) || t.Implements(debugOnlyType))
}
