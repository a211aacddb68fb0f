package node

import (
	"reflect"
	"strings"

	"literal-generator/describe"
)

// namedType returns the qualified name of a named non-builtin type, empty
// otherwise: time.Duration gives "time.Duration", int64 gives "".
func namedType(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}

	return describe.TypeName(t)
}

// isNilRef reports nil pointers, slices and maps.
func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}

type fieldTag struct {
	name     string
	skip     bool
	omitZero bool
}

// parseTag reads the `lit:"name,omitzero"` struct tag. "-" skips the field.
func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("lit")
	if !ok {
		return fieldTag{}
	}

	if tag == "-" {
		return fieldTag{skip: true}
	}

	name, opts, _ := strings.Cut(tag, ",")

	out := fieldTag{name: name}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitzero" {
			out.omitZero = true
		}
	}

	return out
}
