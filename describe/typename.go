package describe

import (
	"reflect"
	"strconv"
	"strings"
)

// TypeName returns the fully qualified name of t: named types are written as
// "import/path.Name", composite types are spelled out recursively, builtin
// types keep their Go name.
//
//	TypeName(reflect.TypeFor[[]*geo.Point]()) // "[]*example.com/geo.Point"
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}

		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}

		return t.String()
	default:
		return t.String()
	}
}

// BaseName strips the import path, the package qualifier and any type
// arguments from a type name: "example.com/geo.Pair[int,string]" becomes "Pair".
func BaseName(typeName string) string {
	if i := strings.IndexByte(typeName, '['); i > 0 {
		typeName = typeName[:i]
	}

	if i := strings.LastIndexByte(typeName, '/'); i >= 0 {
		typeName = typeName[i+1:]
	}

	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		typeName = typeName[i+1:]
	}

	return typeName
}

// SplitName splits a qualified named type into its import path, name and type
// arguments: "example.com/geo.Pair[int]" gives "example.com/geo", "Pair", "[int]".
// Unqualified names return an empty path.
func SplitName(typeName string) (pkgPath, name, args string) {
	head := typeName
	if i := strings.IndexByte(typeName, '['); i > 0 {
		head, args = typeName[:i], typeName[i:]
	}

	slash := strings.LastIndexByte(head, '/')
	if i := strings.LastIndexByte(head, '.'); i > slash {
		return head[:i], head[i+1:], args
	}

	return "", head, args
}
