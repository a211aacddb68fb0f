package node

import (
	"reflect"

	"literal-generator/describe"
	"literal-generator/lit"
)

// shape turns a self description into a literal. Children are described
// through the same protocol as any other value. An empty type name in the
// shape defaults to the Go type of the described value.
func (b *Builder) shape(path lit.Path, s describe.Shape, t reflect.Type, depth int) (lit.Node, error) {
	typeName := s.Type
	if typeName == "" && s.Kind != describe.ShapeSequence {
		typeName = describe.TypeName(t)
	}

	switch s.Kind {
	case describe.ShapeStruct:
		fields, poison, err := b.fields(path, s.Fields, depth)
		if err != nil || poison != nil {
			return poison, err
		}
		return &lit.Keyed{Type: typeName, Fields: fields}, nil

	case describe.ShapeSequence:
		elems, poison, err := b.anyElems(path, s.Elems, depth)
		if err != nil || poison != nil {
			return poison, err
		}
		return &lit.Sequence{Kind: s.Seq, Type: s.Type, Elems: elems}, nil

	case describe.ShapeVariant:
		vp := path.Variant(s.Tag)

		switch s.Payload {
		case lit.PayloadTuple:
			elems, poison, err := b.anyElems(vp, s.Elems, depth)
			if err != nil || poison != nil {
				return poison, err
			}
			return lit.TupleVariant(typeName, s.Tag, elems...), nil
		case lit.PayloadNamed:
			fields, poison, err := b.fields(vp, s.Fields, depth)
			if err != nil || poison != nil {
				return poison, err
			}
			return lit.NamedVariant(typeName, s.Tag, fields...), nil
		default:
			return lit.Unit(typeName, s.Tag), nil
		}

	case describe.ShapeWrapper:
		if len(s.Elems) != 1 {
			return lit.Poison("wrapper shape must hold exactly one value", path), nil
		}

		inner, err := b.any(path.Deref(), s.Elems[0], depth+1)
		if err != nil || describe.Poisoned(inner) {
			return inner, err
		}

		return &lit.Wrapped{Wrapper: s.Wrapper, Ctor: s.Ctor, Type: s.Type, Inner: inner}, nil

	case describe.ShapeDuality:
		if !s.Borrowed && len(s.Elems) != 1 {
			return lit.Poison("owned wrapper shape must hold exactly one value", path), nil
		}

		var err error

		n := describe.Duality(path, typeName, s.Borrowed, func() lit.Node {
			var inner lit.Node
			inner, err = b.any(path.Deref(), s.Elems[0], depth+1)
			return inner
		})
		if err != nil {
			return nil, err
		}

		return n, nil

	case describe.ShapeNode:
		if s.Node == nil {
			return lit.Poison("raw shape without a literal", path), nil
		}
		return s.Node, nil

	default:
		return lit.Poison("unknown shape kind", path), nil
	}
}

func (b *Builder) anyElems(path lit.Path, values []any, depth int) ([]lit.Node, lit.Node, error) {
	return b.elems(path, len(values), func(i int) reflect.Value { return reflect.ValueOf(values[i]) }, depth)
}

func (b *Builder) fields(path lit.Path, in []describe.Field, depth int) ([]lit.Field, lit.Node, error) {
	out := make([]lit.Field, 0, len(in))

	for _, f := range in {
		n, err := b.any(path.Field(f.Name), f.Value, depth+1)
		if err != nil {
			return nil, nil, err
		}

		if describe.Poisoned(n) {
			return nil, n, nil
		}

		out = append(out, lit.Field{Name: f.Name, Value: n})
	}

	return out, nil, nil
}
