package node

import (
	"reflect"

	"literal-generator/lit"
	"literal-generator/primitive"
)

// scalar describes bool, integer and float values. Named types such as
// time.Duration keep their type name.
func scalar(v reflect.Value) lit.Node {
	kind := primitive.FromReflectType(v.Type())

	var p *lit.Primitive

	switch {
	case kind == primitive.KindBool:
		p = lit.Bool(v.Bool())
	case kind.IsFloat():
		p = lit.Float(kind, v.Float())
	case kind.IsSigned():
		p = lit.Int(kind, v.Int())
	default:
		p = lit.Uint(kind, v.Uint())
	}

	p.Type = namedType(v.Type())

	return p
}
