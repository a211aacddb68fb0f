package describe

import (
	"literal-generator/lit"
)

// ReasonBorrowed is the poison reason for a duality wrapper holding a reference.
const ReasonBorrowed = "borrowed-reference value cannot be embedded as a literal"

// Duality classifies an owned/borrowed duality wrapper found at path.
// A borrowed wrapper poisons its subtree. An owned wrapper becomes a
// lit.WrapCow around the payload literal built by owned; a poisoned payload is
// returned unchanged so the poison reaches the root.
func Duality(path lit.Path, typeName string, borrowed bool, owned func() lit.Node) lit.Node {
	if borrowed {
		return lit.Poison(ReasonBorrowed, path)
	}

	inner := owned()
	if Poisoned(inner) {
		return inner
	}

	return &lit.Wrapped{Wrapper: lit.WrapCow, Type: typeName, Inner: inner}
}

// Poisoned reports whether n is an Unsupported marker.
func Poisoned(n lit.Node) bool {
	_, ok := n.(*lit.Unsupported)

	return ok
}
