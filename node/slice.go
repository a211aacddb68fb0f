package node

import (
	"reflect"

	"literal-generator/describe"
	"literal-generator/lit"
)

// sequence describes arrays as SeqArray and slices as SeqList. A nil slice is
// lit.Nil, an empty one an empty sequence.
func (b *Builder) sequence(path lit.Path, v reflect.Value, depth int) (lit.Node, error) {
	t := v.Type()

	kind := lit.SeqArray
	if t.Kind() == reflect.Slice {
		kind = lit.SeqList

		if v.Len() > 0 {
			key := visitKey{ptr: v.Pointer(), len: v.Len(), typ: t}
			if !b.visits.enter(key) {
				return lit.Poison("cyclic reference", path), nil
			}
			defer b.visits.leave(key)
		}
	}

	elems, poison, err := b.elems(path, v.Len(), v.Index, depth)
	if err != nil || poison != nil {
		return poison, err
	}

	return &lit.Sequence{
		Kind:    kind,
		Type:    describe.TypeName(t),
		Elems:   elems,
		Dynamic: t.Elem().Kind() == reflect.Interface,
	}, nil
}

// elems describes n indexed children. The first poisoned child is returned
// instead of the list.
func (b *Builder) elems(path lit.Path, n int, at func(int) reflect.Value, depth int) ([]lit.Node, lit.Node, error) {
	out := make([]lit.Node, 0, n)

	for i := range n {
		elem, err := b.value(path.Index(i), at(i), depth+1)
		if err != nil {
			return nil, nil, err
		}

		if describe.Poisoned(elem) {
			return nil, elem, nil
		}

		out = append(out, elem)
	}

	return out, nil, nil
}
