package node

import (
	"fmt"
	"reflect"

	"literal-generator/describe"
	"literal-generator/lit"
	"literal-generator/options"
)

// keyed describes a struct value field by field, in declaration order.
//
// Field names follow the `lit` tag in the rust dialect; Go output always uses
// the Go field name. Unexported fields are dropped when zero and poison the
// value otherwise, unless the output is generated into the struct's own package.
func (b *Builder) keyed(path lit.Path, v reflect.Value, depth int) (lit.Node, error) {
	t := v.Type()

	if t.Name() == "" && b.cfg.Dialect == options.DialectRust {
		return lit.Poison("anonymous struct type has no Rust name", path), nil
	}

	fields := make([]lit.Field, 0, t.NumField())

	for i := range t.NumField() {
		sf := t.Field(i)

		tag := parseTag(sf)
		if tag.skip {
			continue
		}

		fv := v.Field(i)
		if tag.omitZero && fv.IsZero() {
			continue
		}

		name := sf.Name
		if tag.name != "" && b.cfg.Dialect == options.DialectRust {
			name = tag.name
		}

		fp := path.Field(name)

		if !sf.IsExported() {
			if fv.IsZero() {
				continue
			}

			if !b.samePackage(t) {
				return lit.Poison(fmt.Sprintf("unexported field %s of %s cannot be set outside its package", sf.Name, t), fp), nil
			}
		}

		n, err := b.value(fp, fv, depth+1)
		if err != nil || describe.Poisoned(n) {
			return n, err
		}

		fields = append(fields, lit.Field{Name: name, Value: n, Dynamic: sf.Type.Kind() == reflect.Interface})
	}

	return &lit.Keyed{Type: describe.TypeName(t), Fields: fields}, nil
}

func (b *Builder) samePackage(t reflect.Type) bool {
	return b.cfg.Flags.Has(options.FlagSamePackage) || b.cfg.PkgPath != "" && b.cfg.PkgPath == t.PkgPath()
}
