package analyze

import (
	"go/token"
	"slices"
	"strings"

	"literal-generator/describe"
	"literal-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/geo"
	Name    string // e.g., "Point"
}

// ParseTypeID splits a qualified type name as written in literal trees:
// "example.com/geo.Pair[int]" gives {example.com/geo Pair}. Unqualified
// names, such as builtins and Rust types, and composite types such as
// "[]example.com/geo.Point" report false.
func ParseTypeID(typeName string) (TypeID, bool) {
	pkg, name, _ := describe.SplitName(typeName)
	if pkg == "" || !token.IsIdentifier(name) || strings.ContainsAny(pkg, "[]*(){} ,") {
		return TypeID{}, false
	}

	return TypeID{PkgPath: pkg, Name: name}, true
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindBasic            // underlying int, string, bool, etc.
	TypeKindStruct           // underlying struct
	TypeKindOther            // slices, maps, interfaces and the rest
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type.
type TypeInfo struct {
	ID       TypeID
	Kind     TypeKind
	Exported bool
	// Fields holds the fields of struct types in declaration order.
	Fields []FieldInfo
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string
	Exported bool
	Embedded bool
}

// Field returns the field with the given name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	i := slices.IndexFunc(t.Fields, func(f FieldInfo) bool { return f.Name == name })
	if i < 0 {
		return nil, false
	}

	return &t.Fields[i], true
}

// FieldNames returns the names of the fields a package other than the
// declaring one can set.
func (t *TypeInfo) FieldNames() []string {
	var names []string

	for _, f := range t.Fields {
		if f.Exported {
			names = append(names, f.Name)
		}
	}

	return names
}

// TypeGraph holds all named types of the loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// TypeNames returns the names of the types declared in pkgPath, for
// suggestions.
func (g *TypeGraph) TypeNames(pkgPath string) []string {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
