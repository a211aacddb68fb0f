package lit

import (
	"slices"
)

// Equal reports whether a and b are structurally equal: same variant, same
// scalar text and kind, same names, and pairwise equal children in order.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Primitive:
		y, ok := b.(*Primitive)
		return ok && x.Kind == y.Kind && x.Text == y.Text && x.Type == y.Type
	case *Str:
		y, ok := b.(*Str)
		return ok && x.Text == y.Text && x.Type == y.Type
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && x.Kind == y.Kind && x.Type == y.Type && nodesEqual(x.Elems, y.Elems)
	case *Keyed:
		y, ok := b.(*Keyed)
		return ok && x.Type == y.Type && fieldsEqual(x.Fields, y.Fields)
	case *Variant:
		y, ok := b.(*Variant)
		return ok && x.Type == y.Type && x.Tag == y.Tag && x.Payload == y.Payload &&
			nodesEqual(x.Elems, y.Elems) && fieldsEqual(x.Fields, y.Fields)
	case *Wrapped:
		y, ok := b.(*Wrapped)
		return ok && x.Wrapper == y.Wrapper && x.Ctor == y.Ctor && x.Type == y.Type && Equal(x.Inner, y.Inner)
	case *Mapping:
		y, ok := b.(*Mapping)
		if !ok || x.Type != y.Type || len(x.Entries) != len(y.Entries) {
			return false
		}
		for i := range x.Entries {
			if !Equal(x.Entries[i].Key, y.Entries[i].Key) || !Equal(x.Entries[i].Value, y.Entries[i].Value) {
				return false
			}
		}
		return true
	case *Nil:
		y, ok := b.(*Nil)
		return ok && x.Type == y.Type && x.Collection == y.Collection
	case *Unsupported:
		y, ok := b.(*Unsupported)
		return ok && x.Reason == y.Reason
	case nil:
		return b == nil
	default:
		return false
	}
}

func nodesEqual(a, b []Node) bool {
	return slices.EqualFunc(a, b, Equal)
}

func fieldsEqual(a, b []Field) bool {
	return slices.EqualFunc(a, b, func(x, y Field) bool {
		return x.Name == y.Name && Equal(x.Value, y.Value)
	})
}
